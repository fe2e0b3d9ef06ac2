// Package selection implements the per-section project picker and its
// deduplication rules. It is purely deterministic: no LLM or embedding
// calls happen here.
package selection

// Section identifies a resume section a project can be selected for.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionResearch   Section = "research"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionSkills     Section = "skills"
)

// membershipValue returns the string a project's sections list must contain
// for the project to be eligible for this resume section. The projects
// section historically uses the singular membership value, so a project
// declaring "project" lands in the resume's "projects" section.
func (s Section) membershipValue() string {
	if s == SectionProjects {
		return "project"
	}
	return string(s)
}

// ConsumesSlots reports whether selecting for this section marks projects
// as used. Summary and skills reference already-selected material and never
// claim slots of their own.
func (s Section) ConsumesSlots() bool {
	switch s {
	case SectionResearch, SectionExperience, SectionProjects:
		return true
	}
	return false
}

// Valid reports whether s names a known section.
func (s Section) Valid() bool {
	switch s {
	case SectionSummary, SectionResearch, SectionExperience, SectionProjects, SectionSkills:
		return true
	}
	return false
}

// Policy controls how used-slug pools are shared between sections.
type Policy struct {
	// SeparateProjectsPool gives the projects section its own empty pool so
	// a project shown under research or experience may appear again under
	// projects. Research and experience always share one pool regardless.
	SeparateProjectsPool bool
	// MaxPerSection caps how many projects one section may claim.
	MaxPerSection int
}

// DefaultPolicy mirrors the generator's defaults: projects get their own
// pool and each section holds at most three projects.
func DefaultPolicy() Policy {
	return Policy{
		SeparateProjectsPool: true,
		MaxPerSection:        3,
	}
}
