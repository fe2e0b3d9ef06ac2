package selection

import (
	"github.com/jonathan/resume-pilot/internal/types"
)

// Plan holds the projects claimed by each slot-consuming section during one
// generation run, plus the final pool states for diagnostics.
type Plan struct {
	Sections map[Section][]types.Project
	// SharedUsed is the pool research and experience draw from.
	SharedUsed *UsedSet
	// ProjectsUsed is the pool the projects section draws from. It aliases
	// SharedUsed unless the policy separates it.
	ProjectsUsed *UsedSet
}

// Build runs Select for every requested slot-consuming section, in the
// order given, wiring the pools per the policy: research and experience
// share one pool, and projects either joins that pool or starts from an
// empty one of its own. Sections that consume no slots (summary, skills)
// are skipped; the writer composes them from other material.
func Build(projects []types.Project, jobTags []string, sections []Section, policy Policy) *Plan {
	shared := NewUsedSet()
	projectsPool := shared
	if policy.SeparateProjectsPool {
		projectsPool = NewUsedSet()
	}

	plan := &Plan{
		Sections:     make(map[Section][]types.Project),
		SharedUsed:   shared,
		ProjectsUsed: projectsPool,
	}

	for _, section := range sections {
		if !section.ConsumesSlots() {
			continue
		}
		pool := shared
		if section == SectionProjects {
			pool = projectsPool
		}
		plan.Sections[section] = Select(projects, jobTags, section, pool, policy.MaxPerSection)
	}
	return plan
}

// Selected returns the projects claimed for a section, never nil.
func (p *Plan) Selected(section Section) []types.Project {
	if projects, ok := p.Sections[section]; ok {
		return projects
	}
	return []types.Project{}
}

// TotalSelected counts claimed projects across all sections, counting a
// project once per section that claimed it.
func (p *Plan) TotalSelected() int {
	n := 0
	for _, projects := range p.Sections {
		n += len(projects)
	}
	return n
}
