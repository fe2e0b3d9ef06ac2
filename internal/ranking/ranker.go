// Package ranking scores projects against a job description using the
// embedding oracle and filters them by a relevance threshold.
package ranking

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/analysis"
	"github.com/jonathan/resume-pilot/internal/embedding"
	"github.com/jonathan/resume-pilot/internal/store"
	"github.com/jonathan/resume-pilot/internal/types"
)

// Ranker ranks projects by embedding similarity to a job description.
type Ranker struct {
	embedder  embedding.Generator
	analyzer  *analysis.Analyzer
	projects  *store.Store
	threshold float64
	maxRecs   int
	logger    *zap.Logger
}

// Options configures a Ranker.
type Options struct {
	// Threshold is the minimum relevance score a project must reach to stay
	// in the ranked result.
	Threshold float64
	// MaxRecommendations caps the ranked list returned by Recommendations.
	MaxRecommendations int
}

// New creates a Ranker.
func New(embedder embedding.Generator, analyzer *analysis.Analyzer, projects *store.Store, opts Options, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxRecommendations <= 0 {
		opts.MaxRecommendations = 5
	}
	return &Ranker{
		embedder:  embedder,
		analyzer:  analyzer,
		projects:  projects,
		threshold: opts.Threshold,
		maxRecs:   opts.MaxRecommendations,
		logger:    logger,
	}
}

// Rank embeds the job description once and each project once, attaches
// cosine similarity scores, sorts descending (stable, so ties preserve
// input order), and filters out projects below the threshold.
//
// An empty project pool returns an empty result without invoking the
// oracle. Oracle failure is treated as "no ranked results", not an error:
// one unavailable embedding service must not abort a whole request.
func (r *Ranker) Rank(ctx context.Context, jobDescription string, projects []types.Project) ([]types.Project, error) {
	if len(projects) == 0 {
		return []types.Project{}, nil
	}

	jobVec, err := r.embedder.Embed(ctx, jobDescription)
	if err != nil {
		r.logger.Warn("job description embedding failed, returning no ranked results", zap.Error(err))
		return []types.Project{}, nil
	}

	texts := make([]string, len(projects))
	for i, p := range projects {
		doc, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		texts[i] = string(doc)
	}

	vecs, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		r.logger.Warn("project embedding failed, returning no ranked results", zap.Error(err))
		return []types.Project{}, nil
	}

	scored := make([]types.Project, len(projects))
	copy(scored, projects)
	for i := range scored {
		scored[i].RelevanceScore = embedding.Cosine(jobVec, vecs[i])
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	qualified := make([]types.Project, 0, len(scored))
	for _, p := range scored {
		if p.RelevanceScore >= r.threshold {
			qualified = append(qualified, p)
		}
	}
	return qualified, nil
}

// Recommendations represents the composed ranking result for one job
// description.
type Recommendations struct {
	RankedProjects []types.Project    `json:"ranked_projects"`
	JobAnalysis    *types.JobAnalysis `json:"job_analysis"`
	JobTags        []string           `json:"job_tags"`
	Statistics     *store.Statistics  `json:"project_statistics"`
}

// Recommendations composes Rank with the analyzer and the store: ranked
// projects truncated to the configured maximum, the structured job
// analysis, the derived job tags, and store statistics. Analyzer failure
// propagates: nothing useful can be recommended without job data.
func (r *Ranker) Recommendations(ctx context.Context, jobDescription string) (*Recommendations, error) {
	jobAnalysis, err := r.analyzer.Analyze(ctx, jobDescription)
	if err != nil {
		return nil, err
	}

	projects, err := r.projects.LoadAll()
	if err != nil {
		return nil, err
	}

	ranked, err := r.Rank(ctx, jobDescription, projects)
	if err != nil {
		return nil, err
	}
	if len(ranked) > r.maxRecs {
		ranked = ranked[:r.maxRecs]
	}

	stats, err := r.projects.Stats()
	if err != nil {
		return nil, err
	}

	return &Recommendations{
		RankedProjects: ranked,
		JobAnalysis:    jobAnalysis,
		JobTags:        analysis.DeriveTags(jobAnalysis),
		Statistics:     stats,
	}, nil
}
