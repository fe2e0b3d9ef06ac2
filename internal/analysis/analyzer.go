// Package analysis extracts structured fields from free-text job
// descriptions via the LLM oracle and derives normalized job tags from them.
package analysis

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/prompts"
	"github.com/jonathan/resume-pilot/internal/schemas"
	"github.com/jonathan/resume-pilot/internal/types"
)

// Analyzer turns raw job description text into a JobAnalysis.
type Analyzer struct {
	client llm.Client
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Client, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{client: client, logger: logger}
}

// jsonObjectPattern matches the first {...} block in a response, for the
// fallback parse when the model wraps JSON in prose.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Analyze invokes the extraction prompt once and parses the response.
// Parse order: strict (schema-checked) JSON, then the first well-formed
// JSON object substring. Total failure returns *ExtractionError; there is
// no automatic retry.
func (a *Analyzer) Analyze(ctx context.Context, jobDescription string) (*types.JobAnalysis, error) {
	template := prompts.MustGet("analysis.json", "extract-job-description")
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
	})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{Message: "extraction call failed", Cause: err}
	}

	result, err := parseAnalysis(raw)
	if err != nil {
		// Fallback: pull the first JSON object out of the response.
		match := jsonObjectPattern.FindString(raw)
		if match == "" {
			return nil, &ExtractionError{Message: "no structured data in response", Cause: err}
		}
		result, err = parseAnalysis(match)
		if err != nil {
			return nil, &ExtractionError{Message: "could not parse structured data from response", Cause: err}
		}
		a.logger.Debug("strict parse failed, fallback extraction succeeded")
	}

	normalize(result)
	return result, nil
}

func parseAnalysis(raw string) (*types.JobAnalysis, error) {
	if err := schemas.ValidateJobAnalysis(raw); err != nil {
		return nil, err
	}
	var result types.JobAnalysis
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// normalize applies defaulting once at construction: skill lists are
// deduplicated case-sensitively preserving first occurrence, and keywords
// are synthesized from the other fields when the extraction left them empty.
func normalize(a *types.JobAnalysis) {
	a.RequiredSkills = dedupeExact(a.RequiredSkills)
	a.PreferredSkills = dedupeExact(a.PreferredSkills)
	a.ToolsTechnologies = dedupeExact(a.ToolsTechnologies)
	a.Keywords = dedupeExact(a.Keywords)

	if len(a.Keywords) == 0 {
		var keywords []string
		keywords = append(keywords, a.RequiredSkills...)
		keywords = append(keywords, a.PreferredSkills...)
		keywords = append(keywords, a.ToolsTechnologies...)
		if strings.TrimSpace(a.IndustryFocus) != "" {
			keywords = append(keywords, a.IndustryFocus)
		}
		a.Keywords = dedupeExact(keywords)
	}
}

// dedupeExact trims and deduplicates by exact string match (not
// case-folded), preserving first occurrence order.
func dedupeExact(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
