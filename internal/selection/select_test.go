package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pilot/internal/types"
)

func project(slug string, sections []string, tags []string, featured bool) types.Project {
	return types.Project{
		Title:         slug,
		Slug:          slug,
		Sections:      types.StringList(sections),
		RelevanceTags: types.StringList(tags),
		Featured:      featured,
	}
}

func slugs(projects []types.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Slug)
	}
	return out
}

func TestSelectSkipsUsedSlugs(t *testing.T) {
	pool := []types.Project{
		project("alpha", []string{"research"}, []string{"ml"}, false),
		project("beta", []string{"research"}, []string{"ml"}, false),
	}
	used := NewUsedSet()
	used.Mark("alpha")

	got := Select(pool, []string{"ml"}, SectionResearch, used, 5)

	assert.Equal(t, []string{"beta"}, slugs(got))
}

func TestSelectSectionMembershipIsExact(t *testing.T) {
	pool := []types.Project{
		project("tagged-projects", []string{"projects"}, []string{"ml"}, false),
		project("tagged-project", []string{"project"}, []string{"ml"}, false),
		project("tagged-research", []string{"research"}, []string{"ml"}, false),
	}

	// The projects section matches the singular membership value only.
	got := Select(pool, []string{"ml"}, SectionProjects, NewUsedSet(), 5)
	assert.Equal(t, []string{"tagged-project"}, slugs(got))

	got = Select(pool, []string{"ml"}, SectionResearch, NewUsedSet(), 5)
	assert.Equal(t, []string{"tagged-research"}, slugs(got))
}

func TestSelectTagGateNeverBypassed(t *testing.T) {
	pool := []types.Project{
		project("alpha", []string{"research"}, []string{"robotics"}, true),
		project("beta", []string{"research"}, []string{"robotics"}, false),
	}
	used := NewUsedSet()

	got := Select(pool, []string{"ml", "nlp"}, SectionResearch, used, 5)

	assert.Empty(t, got)
	assert.Zero(t, used.Len(), "nothing selected means nothing marked used")
}

func TestSelectTagMatchIsCaseInsensitive(t *testing.T) {
	pool := []types.Project{
		project("alpha", []string{"research"}, []string{"ml"}, false),
	}

	got := Select(pool, []string{"ML"}, SectionResearch, NewUsedSet(), 5)

	assert.Equal(t, []string{"alpha"}, slugs(got))
}

func TestSelectFeaturedFirstStableOrder(t *testing.T) {
	// Input order is relevance order; featured projects move ahead while
	// each side keeps its relative order.
	pool := []types.Project{
		project("first", []string{"experience"}, []string{"ml"}, false),
		project("second", []string{"experience"}, []string{"ml"}, true),
		project("third", []string{"experience"}, []string{"ml"}, false),
		project("fourth", []string{"experience"}, []string{"ml"}, true),
	}

	got := Select(pool, []string{"ml"}, SectionExperience, NewUsedSet(), 5)

	assert.Equal(t, []string{"second", "fourth", "first", "third"}, slugs(got))
}

func TestSelectTruncatesAfterOrdering(t *testing.T) {
	pool := []types.Project{
		project("plain", []string{"experience"}, []string{"ml"}, false),
		project("starred", []string{"experience"}, []string{"ml"}, true),
	}

	got := Select(pool, []string{"ml"}, SectionExperience, NewUsedSet(), 1)

	require.Len(t, got, 1)
	assert.Equal(t, "starred", got[0].Slug, "truncation happens after the featured partition")
}

func TestSelectMarksOnlySelected(t *testing.T) {
	pool := []types.Project{
		project("alpha", []string{"research"}, []string{"ml"}, false),
		project("beta", []string{"research"}, []string{"ml"}, false),
		project("gamma", []string{"research"}, []string{"ml"}, false),
	}
	used := NewUsedSet()

	got := Select(pool, []string{"ml"}, SectionResearch, used, 2)

	require.Len(t, got, 2)
	assert.True(t, used.Contains("alpha"))
	assert.True(t, used.Contains("beta"))
	assert.False(t, used.Contains("gamma"), "truncated projects stay available")
}

func TestSelectNonPositiveMaxCount(t *testing.T) {
	pool := []types.Project{
		project("alpha", []string{"research"}, []string{"ml"}, false),
	}
	used := NewUsedSet()

	assert.Empty(t, Select(pool, []string{"ml"}, SectionResearch, used, 0))
	assert.Empty(t, Select(pool, []string{"ml"}, SectionResearch, used, -1))
	assert.Zero(t, used.Len())
}

func TestBuildResearchAndExperienceShareOnePool(t *testing.T) {
	// "overlap" belongs to both sections; once research claims it,
	// experience must not show it again.
	pool := []types.Project{
		project("overlap", []string{"research", "experience"}, []string{"ml"}, false),
		project("exp-only", []string{"experience"}, []string{"ml"}, false),
	}

	plan := Build(pool, []string{"ml"}, []Section{SectionResearch, SectionExperience}, DefaultPolicy())

	assert.Equal(t, []string{"overlap"}, slugs(plan.Selected(SectionResearch)))
	assert.Equal(t, []string{"exp-only"}, slugs(plan.Selected(SectionExperience)))
}

func TestBuildSeparateProjectsPoolAllowsReappearance(t *testing.T) {
	pool := []types.Project{
		project("dual", []string{"research", "project"}, []string{"ml"}, false),
	}

	plan := Build(pool, []string{"ml"}, []Section{SectionResearch, SectionProjects}, DefaultPolicy())

	assert.Equal(t, []string{"dual"}, slugs(plan.Selected(SectionResearch)))
	assert.Equal(t, []string{"dual"}, slugs(plan.Selected(SectionProjects)),
		"projects draws from its own empty pool by default")
}

func TestBuildSharedProjectsPoolDeduplicates(t *testing.T) {
	pool := []types.Project{
		project("dual", []string{"research", "project"}, []string{"ml"}, false),
	}
	policy := DefaultPolicy()
	policy.SeparateProjectsPool = false

	plan := Build(pool, []string{"ml"}, []Section{SectionResearch, SectionProjects}, policy)

	assert.Equal(t, []string{"dual"}, slugs(plan.Selected(SectionResearch)))
	assert.Empty(t, plan.Selected(SectionProjects))
}

func TestBuildSkipsNonSlotSections(t *testing.T) {
	pool := []types.Project{
		project("alpha", []string{"research"}, []string{"ml"}, false),
	}

	plan := Build(pool, []string{"ml"}, []Section{SectionSummary, SectionSkills}, DefaultPolicy())

	assert.Zero(t, plan.TotalSelected())
	assert.Zero(t, plan.SharedUsed.Len())
}

func TestBuildSectionOrderDeterminesClaims(t *testing.T) {
	pool := []types.Project{
		project("dual", []string{"research", "experience"}, []string{"ml"}, false),
	}

	plan := Build(pool, []string{"ml"}, []Section{SectionExperience, SectionResearch}, DefaultPolicy())

	assert.Equal(t, []string{"dual"}, slugs(plan.Selected(SectionExperience)))
	assert.Empty(t, plan.Selected(SectionResearch))
}

func TestBuildFullScenario(t *testing.T) {
	// Five projects across overlapping sections: research picks its two
	// tag-matched members featured-first, experience sees only what is
	// left in the shared pool, and projects starts fresh.
	pool := []types.Project{
		project("vision-pipeline", []string{"research", "experience", "project"}, []string{"computer-vision", "ml"}, true),
		project("edge-deploy", []string{"experience", "project"}, []string{"edge-ai", "embedded"}, false),
		project("nlp-study", []string{"research"}, []string{"nlp"}, false),
		project("ml-platform", []string{"experience", "project"}, []string{"ml"}, true),
		project("legacy-crm", []string{"experience"}, []string{"crm"}, false),
	}
	jobTags := []string{"ml", "computer-vision", "edge-ai"}

	plan := Build(pool, jobTags, []Section{SectionResearch, SectionExperience, SectionProjects}, DefaultPolicy())

	assert.Equal(t, []string{"vision-pipeline"}, slugs(plan.Selected(SectionResearch)),
		"nlp-study fails the tag gate, vision-pipeline is claimed by research")
	assert.Equal(t, []string{"ml-platform", "edge-deploy"}, slugs(plan.Selected(SectionExperience)),
		"vision-pipeline is used, legacy-crm fails the tag gate, featured ml-platform leads")
	assert.Equal(t, []string{"vision-pipeline", "ml-platform", "edge-deploy"}, slugs(plan.Selected(SectionProjects)),
		"projects reuses freely from its own pool")
}
