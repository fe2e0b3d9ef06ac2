// Package writer generates resume section content from selected projects and
// a job analysis. Every section degrades to a deterministic fallback on
// oracle failure; a generation request never fails because a model call did.
package writer

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/analysis"
	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/prompts"
	"github.com/jonathan/resume-pilot/internal/ranking"
	"github.com/jonathan/resume-pilot/internal/selection"
	"github.com/jonathan/resume-pilot/internal/store"
	"github.com/jonathan/resume-pilot/internal/types"
)

// sectionOrder is the fixed generation priority. Request order does not
// matter: research claims shared-pool slots before experience regardless of
// how the caller listed sections.
var sectionOrder = []selection.Section{
	selection.SectionSummary,
	selection.SectionResearch,
	selection.SectionExperience,
	selection.SectionProjects,
	selection.SectionSkills,
}

// Generator produces resume content. It owns the full generation pipeline:
// analyze, rank, select, then write each section sequentially.
type Generator struct {
	client   llm.Client
	analyzer *analysis.Analyzer
	ranker   *ranking.Ranker
	projects *store.Store
	policy   selection.Policy
	logger   *zap.Logger
}

// New creates a Generator.
func New(client llm.Client, analyzer *analysis.Analyzer, ranker *ranking.Ranker, projects *store.Store, policy selection.Policy, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client:   client,
		analyzer: analyzer,
		ranker:   ranker,
		projects: projects,
		policy:   policy,
		logger:   logger,
	}
}

// Section generates one resume section from the given material. It makes at
// most one oracle call and always returns usable text: oracle failure,
// empty output, or output below the section's minimum length all yield the
// section's fallback.
func (g *Generator) Section(ctx context.Context, section selection.Section, jobDescription string, selected []types.Project, jobAnalysis *types.JobAnalysis) string {
	strat, ok := strategies[section]
	if !ok {
		g.logger.Warn("no strategy for section", zap.String("section", string(section)))
		return ""
	}
	if strat.needsProjects && len(selected) == 0 {
		return strat.fallback(selected, jobAnalysis)
	}

	template := prompts.MustGet("sections.json", strat.promptKey)
	prompt := prompts.Format(template, strat.buildData(jobDescription, selected, jobAnalysis))

	raw, err := g.client.GenerateContent(ctx, prompt, strat.tier)
	if err != nil {
		g.logger.Warn("section generation failed, using fallback",
			zap.String("section", string(section)), zap.Error(err))
		return strat.fallback(selected, jobAnalysis)
	}

	text := llm.TrimQuotes(strings.TrimSpace(raw))
	if strat.postpro != nil {
		text = strat.postpro(text)
	}
	if len(text) < strat.minLength {
		g.logger.Warn("section output too short, using fallback",
			zap.String("section", string(section)), zap.Int("length", len(text)))
		return strat.fallback(selected, jobAnalysis)
	}
	return text
}

// ResumeResult is the outcome of one full generation run.
type ResumeResult struct {
	Sections             map[string]string   `json:"sections"`
	JobAnalysis          *types.JobAnalysis  `json:"job_analysis"`
	JobTags              []string            `json:"job_tags"`
	SectionProjects      map[string][]string `json:"section_projects"`
	SelectedCount        int                 `json:"selected_project_count"`
	SeparateProjectsPool bool                `json:"separate_projects_pool"`
}

// GenerateResume runs the full pipeline for one request: analyze the job
// description, rank the store's projects, build the per-section selection
// plan, then generate each requested section sequentially in priority
// order. Only analyzer and store failures propagate; ranking and section
// generation degrade instead.
func (g *Generator) GenerateResume(ctx context.Context, req *types.GenerateResumeRequest) (*ResumeResult, error) {
	jobAnalysis, err := g.analyzer.Analyze(ctx, req.JobDescription)
	if err != nil {
		return nil, err
	}
	jobTags := analysis.DeriveTags(jobAnalysis)

	all, err := g.projects.LoadAll()
	if err != nil {
		return nil, err
	}
	ranked, err := g.ranker.Rank(ctx, req.JobDescription, all)
	if err != nil {
		return nil, err
	}

	policy := g.policy
	if req.MaxPerSection > 0 {
		policy.MaxPerSection = req.MaxPerSection
	}
	if req.SeparateProjects != nil {
		policy.SeparateProjectsPool = *req.SeparateProjects
	}

	requested := requestedSections(req.IncludeSections)
	plan := selection.Build(ranked, jobTags, requested, policy)

	result := &ResumeResult{
		Sections:             make(map[string]string, len(requested)),
		JobAnalysis:          jobAnalysis,
		JobTags:              jobTags,
		SectionProjects:      make(map[string][]string),
		SeparateProjectsPool: policy.SeparateProjectsPool,
	}

	for _, section := range requested {
		material := g.sectionMaterial(section, plan, ranked)
		result.Sections[string(section)] = g.Section(ctx, section, req.JobDescription, material, jobAnalysis)
		if section.ConsumesSlots() {
			slugs := make([]string, 0, len(material))
			for _, p := range material {
				slugs = append(slugs, p.Slug)
			}
			result.SectionProjects[string(section)] = slugs
			result.SelectedCount += len(material)
		}
	}
	return result, nil
}

// sectionMaterial returns the projects a section's prompt should see. Slot
// sections use their plan selection; summary sees the top ranked projects
// without claiming them; skills aggregates across everything ranked.
func (g *Generator) sectionMaterial(section selection.Section, plan *selection.Plan, ranked []types.Project) []types.Project {
	if section.ConsumesSlots() {
		return plan.Selected(section)
	}
	if section == selection.SectionSummary && len(ranked) > g.policy.MaxPerSection && g.policy.MaxPerSection > 0 {
		return ranked[:g.policy.MaxPerSection]
	}
	return ranked
}

// requestedSections maps the request's section names onto the fixed priority
// order, dropping duplicates.
func requestedSections(names []string) []selection.Section {
	want := make(map[selection.Section]bool, len(names))
	for _, name := range names {
		want[selection.Section(strings.ToLower(strings.TrimSpace(name)))] = true
	}
	out := make([]selection.Section, 0, len(want))
	for _, section := range sectionOrder {
		if want[section] {
			out = append(out, section)
		}
	}
	return out
}
