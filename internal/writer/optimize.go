package writer

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/prompts"
	"github.com/jonathan/resume-pilot/internal/types"
)

// OptimizeSection rewrites an existing resume section to better match the
// analyzed job. On oracle failure the current text comes back unchanged;
// an optimization pass must never lose content.
func (g *Generator) OptimizeSection(ctx context.Context, sectionName, current, jobDescription string, jobAnalysis *types.JobAnalysis) string {
	template := prompts.MustGet("sections.json", "optimize")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":       jobAnalysis.JobTitle,
		"RequiredSkills": strings.Join(jobAnalysis.RequiredSkills, ", "),
		"JobDescription": jobDescription,
		"SectionName":    sectionName,
		"CurrentSection": current,
	})

	raw, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		g.logger.Warn("section optimization failed, keeping original",
			zap.String("section", sectionName), zap.Error(err))
		return current
	}

	optimized := llm.TrimQuotes(strings.TrimSpace(raw))
	if optimized == "" {
		return current
	}
	return optimized
}

// SuggestImprovements asks the oracle for concrete advice on a resume
// section against a job description. The output is advisory text for the
// caller, not resume content, so oracle failure propagates instead of
// degrading to a fallback.
func (g *Generator) SuggestImprovements(ctx context.Context, sectionName, content, jobDescription string) (string, error) {
	template := prompts.MustGet("analysis.json", "suggest-improvements")
	prompt := prompts.Format(template, map[string]string{
		"SectionName":    sectionName,
		"Content":        content,
		"JobDescription": jobDescription,
	})

	raw, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
