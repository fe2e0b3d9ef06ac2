package writer

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/selection"
	"github.com/jonathan/resume-pilot/internal/types"
)

// sectionStrategy describes how one resume section is produced: which prompt
// template it uses, how its template data is assembled, how raw model output
// is cleaned up, and what minimum length counts as usable.
type sectionStrategy struct {
	promptKey string
	tier      llm.ModelTier
	// needsProjects short-circuits to the fallback when no projects were
	// selected for the section.
	needsProjects bool
	// minLength is the shortest acceptable cleaned output. Below it the
	// fallback is used instead.
	minLength int
	buildData func(jobDescription string, projects []types.Project, analysis *types.JobAnalysis) map[string]string
	postpro   func(string) string
	fallback  func(projects []types.Project, analysis *types.JobAnalysis) string
}

var strategies = map[selection.Section]sectionStrategy{
	selection.SectionSummary: {
		promptKey: "summary",
		tier:      llm.TierStandard,
		minLength: 20,
		buildData: func(jobDescription string, projects []types.Project, analysis *types.JobAnalysis) map[string]string {
			return map[string]string{
				"JobTitle":            analysis.JobTitle,
				"IndustryFocus":       analysis.IndustryFocus,
				"RequiredSkills":      strings.Join(analysis.RequiredSkills, ", "),
				"ProjectDescriptions": projectDescriptions(projects),
			}
		},
		postpro:  stripBold,
		fallback: fallbackSummary,
	},
	selection.SectionResearch: {
		promptKey:     "research",
		tier:          llm.TierStandard,
		needsProjects: true,
		minLength:     20,
		buildData: func(jobDescription string, projects []types.Project, analysis *types.JobAnalysis) map[string]string {
			return map[string]string{
				"JobTitle":            analysis.JobTitle,
				"IndustryFocus":       analysis.IndustryFocus,
				"RequiredSkills":      strings.Join(analysis.RequiredSkills, ", "),
				"ProjectDescriptions": projectDescriptions(projects),
			}
		},
		fallback: fallbackResearch,
	},
	selection.SectionExperience: {
		promptKey:     "experience",
		tier:          llm.TierStandard,
		needsProjects: true,
		minLength:     20,
		buildData: func(jobDescription string, projects []types.Project, analysis *types.JobAnalysis) map[string]string {
			return map[string]string{
				"JobTitle":            analysis.JobTitle,
				"RequiredSkills":      strings.Join(analysis.RequiredSkills, ", "),
				"JobDescription":      jobDescription,
				"ProjectDescriptions": projectDescriptions(projects),
			}
		},
		fallback: fallbackExperience,
	},
	selection.SectionProjects: {
		promptKey:     "projects",
		tier:          llm.TierStandard,
		needsProjects: true,
		minLength:     20,
		buildData: func(jobDescription string, projects []types.Project, analysis *types.JobAnalysis) map[string]string {
			return map[string]string{
				"JobTitle":            analysis.JobTitle,
				"IndustryFocus":       analysis.IndustryFocus,
				"RequiredSkills":      strings.Join(analysis.RequiredSkills, ", "),
				"ProjectDescriptions": projectDescriptions(projects),
			}
		},
		fallback: fallbackProjects,
	},
	selection.SectionSkills: {
		promptKey: "skills",
		tier:      llm.TierStandard,
		minLength: 50,
		buildData: func(jobDescription string, projects []types.Project, analysis *types.JobAnalysis) map[string]string {
			return map[string]string{
				"JobTitle":        analysis.JobTitle,
				"RequiredSkills":  strings.Join(analysis.RequiredSkills, ", "),
				"PreferredSkills": strings.Join(analysis.PreferredSkills, ", "),
				"ProjectSkills":   strings.Join(projectSkills(projects), ", "),
			}
		},
		fallback: fallbackSkills,
	},
}

// projectDescriptions renders the selected projects as the text block the
// section prompts expect: one paragraph per project, only non-empty fields.
func projectDescriptions(projects []types.Project) string {
	if len(projects) == 0 {
		return "(no projects selected)"
	}
	var sb strings.Builder
	for i, p := range projects {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Project: %s\n", p.Title)
		writeField(&sb, "Role", p.Role)
		writeField(&sb, "Description", p.Description)
		if len(p.Technologies) > 0 {
			writeField(&sb, "Technologies", strings.Join(p.Technologies, ", "))
		}
		writeField(&sb, "Methods", p.Methods)
		writeField(&sb, "Results", p.Results)
		writeField(&sb, "Impact", p.Impact)
		writeField(&sb, "Duration", p.Duration)
	}
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	if strings.TrimSpace(value) != "" {
		fmt.Fprintf(sb, "%s: %s\n", label, value)
	}
}

// projectSkills aggregates technologies across projects, deduplicated
// preserving first occurrence.
func projectSkills(projects []types.Project) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range projects {
		for _, tech := range p.Technologies {
			key := strings.ToLower(tech)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, tech)
		}
	}
	return out
}

// stripBold removes markdown bold markers the summary model tends to emit.
func stripBold(text string) string {
	return strings.ReplaceAll(text, "**", "")
}
