// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobAnalysis outputs a human-readable summary of the analyzed job.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis, jobTags []string) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", analysis.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", analysis.JobTitle))
	if analysis.IndustryFocus != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", analysis.IndustryFocus))
	}
	sb.WriteString("\n")

	appendSkillList(&sb, "Required Skills", analysis.RequiredSkills, maxItemsToShow)
	appendSkillList(&sb, "Preferred Skills", analysis.PreferredSkills, 3)

	if len(jobTags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(jobTags, ", ")))
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedProjects outputs the ranked projects with relevance scores.
func (p *Printer) PrintRankedProjects(projects []types.Project) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := projects[i]
		sb.WriteString(fmt.Sprintf("%d. %s (%.3f)", i+1, project.Title, project.RelevanceScore))
		if project.Featured {
			sb.WriteString(" ★")
		}
		sb.WriteString("\n")
		if len(project.RelevanceTags) > 0 {
			sb.WriteString(fmt.Sprintf("   tags: %s\n", strings.Join(project.RelevanceTags, ", ")))
		}
	}
	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(projects)-maxItemsToShow))
	}

	p.printBox("RANKED PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs which projects each section claimed.
func (p *Printer) PrintSelection(sectionProjects map[string][]string) {
	if len(sectionProjects) == 0 {
		return
	}

	var sb strings.Builder
	for _, section := range []string{"research", "experience", "projects"} {
		selected, ok := sectionProjects[section]
		if !ok {
			continue
		}
		if len(selected) == 0 {
			sb.WriteString(fmt.Sprintf("%s: (none)\n", section))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", section, strings.Join(selected, ", ")))
	}

	p.printBox("SECTION SELECTION", strings.TrimSuffix(sb.String(), "\n"))
}

func appendSkillList(sb *strings.Builder, label string, skills []string, limit int) {
	if len(skills) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(skills), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-limit))
	}
	sb.WriteString("\n")
}
