// Package scorer rates resume text against a job description with an
// ATS-style keyword match plus an optional model-written feedback paragraph.
package scorer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/analysis"
	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/prompts"
)

// Scorer computes match scores between resume sections and a job analysis.
type Scorer struct {
	client   llm.Client
	analyzer *analysis.Analyzer
	logger   *zap.Logger
}

// New creates a Scorer.
func New(client llm.Client, analyzer *analysis.Analyzer, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{client: client, analyzer: analyzer, logger: logger}
}

// Score is the result of matching one resume against one job description.
// Rates are percentages in [0, 100]; the overall score averages the
// required and preferred rates.
type Score struct {
	OverallScore       float64  `json:"overall_score"`
	RequiredMatchRate  float64  `json:"required_match_rate"`
	PreferredMatchRate float64  `json:"preferred_match_rate"`
	MatchedRequired    []string `json:"matched_required_skills"`
	MissingRequired    []string `json:"missing_required_skills"`
	MatchedPreferred   []string `json:"matched_preferred_skills"`
	MissingPreferred   []string `json:"missing_preferred_skills"`
	Feedback           string   `json:"feedback"`
}

// Score analyzes the job description and matches each extracted skill
// against the concatenated resume text, case-insensitively by substring.
// A skill category with nothing extracted counts as fully matched. The
// feedback paragraph is best effort: oracle failure leaves a deterministic
// summary line instead.
func (s *Scorer) Score(ctx context.Context, jobDescription string, resumeSections map[string]string) (*Score, error) {
	jobAnalysis, err := s.analyzer.Analyze(ctx, jobDescription)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, text := range resumeSections {
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	resumeText := strings.ToLower(sb.String())

	matchedRequired, missingRequired := matchSkills(resumeText, jobAnalysis.RequiredSkills)
	matchedPreferred, missingPreferred := matchSkills(resumeText, jobAnalysis.PreferredSkills)

	requiredRate := matchRate(len(matchedRequired), len(jobAnalysis.RequiredSkills))
	preferredRate := matchRate(len(matchedPreferred), len(jobAnalysis.PreferredSkills))

	score := &Score{
		OverallScore:       math.Round((requiredRate+preferredRate)/2*10) / 10,
		RequiredMatchRate:  requiredRate,
		PreferredMatchRate: preferredRate,
		MatchedRequired:    matchedRequired,
		MissingRequired:    missingRequired,
		MatchedPreferred:   matchedPreferred,
		MissingPreferred:   missingPreferred,
	}
	score.Feedback = s.feedback(ctx, jobAnalysis.JobTitle, score)
	return score, nil
}

func matchSkills(resumeText string, skills []string) (matched, missing []string) {
	matched = make([]string, 0, len(skills))
	missing = make([]string, 0, len(skills))
	for _, skill := range skills {
		if strings.Contains(resumeText, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

func matchRate(matched, total int) float64 {
	if total == 0 {
		return 100
	}
	return math.Round(float64(matched)/float64(total)*1000) / 10
}

func (s *Scorer) feedback(ctx context.Context, jobTitle string, score *Score) string {
	template := prompts.MustGet("scoring.json", "score-feedback")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":         jobTitle,
		"OverallScore":     fmt.Sprintf("%.1f", score.OverallScore),
		"MatchedRequired":  strings.Join(score.MatchedRequired, ", "),
		"MissingRequired":  strings.Join(score.MissingRequired, ", "),
		"MatchedPreferred": strings.Join(score.MatchedPreferred, ", "),
		"MissingPreferred": strings.Join(score.MissingPreferred, ", "),
	})

	raw, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		s.logger.Warn("score feedback generation failed, using fallback", zap.Error(err))
		return fmt.Sprintf("Your resume matches %.1f%% of the extracted job requirements. Missing required skills: %s.",
			score.OverallScore, joinOrNone(score.MissingRequired))
	}
	return strings.TrimSpace(raw)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
