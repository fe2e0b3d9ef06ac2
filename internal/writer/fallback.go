package writer

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Fallback renderers produce deterministic, hand-assembled section text from
// the material already on hand. They run when the oracle fails or returns
// unusable output, so a generation request always yields every requested
// section.

func fallbackSummary(projects []types.Project, analysis *types.JobAnalysis) string {
	role := analysis.JobTitle
	if role == "" {
		role = "technical roles"
	}
	skills := analysis.RequiredSkills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	if len(skills) == 0 {
		return fmt.Sprintf("Results-driven engineer with hands-on experience delivering %d technical projects end to end, seeking to apply that background to %s.", len(projects), role)
	}
	return fmt.Sprintf("Results-driven engineer experienced in %s, with a track record of delivering technical projects end to end, seeking to apply that background to %s.", strings.Join(skills, ", "), role)
}

func fallbackExperience(projects []types.Project, _ *types.JobAnalysis) string {
	return fallbackProjectList("EXPERIENCE", projects)
}

func fallbackResearch(projects []types.Project, _ *types.JobAnalysis) string {
	return fallbackProjectList("RESEARCH EXPERIENCE", projects)
}

func fallbackProjects(projects []types.Project, _ *types.JobAnalysis) string {
	return fallbackProjectList("PROJECTS", projects)
}

// fallbackProjectList renders selected projects as plain bullet lines. With
// nothing selected it still emits a usable placeholder heading.
func fallbackProjectList(heading string, projects []types.Project) string {
	var sb strings.Builder
	sb.WriteString(heading + "\n")
	if len(projects) == 0 {
		sb.WriteString("- Relevant project details available upon request.")
		return sb.String()
	}
	for _, p := range projects {
		fmt.Fprintf(&sb, "- %s", p.Title)
		if p.Role != "" {
			fmt.Fprintf(&sb, " (%s)", p.Role)
		}
		sb.WriteString("\n")
		if p.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", p.Description)
		}
		if len(p.Technologies) > 0 {
			fmt.Fprintf(&sb, "  Technologies: %s\n", strings.Join(p.Technologies, ", "))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func fallbackSkills(projects []types.Project, analysis *types.JobAnalysis) string {
	var lines []string
	if len(analysis.RequiredSkills) > 0 {
		lines = append(lines, "Core Skills: "+strings.Join(analysis.RequiredSkills, ", "))
	}
	if len(analysis.PreferredSkills) > 0 {
		lines = append(lines, "Additional Skills: "+strings.Join(analysis.PreferredSkills, ", "))
	}
	if techs := projectSkills(projects); len(techs) > 0 {
		lines = append(lines, "Technologies: "+strings.Join(techs, ", "))
	}
	if len(lines) == 0 {
		return "SKILLS\n- Programming, problem solving, and cross-functional collaboration."
	}
	return "SKILLS\n" + strings.Join(lines, "\n")
}
