package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-pilot/internal/types"
)

func TestDeriveTagsFromSkills(t *testing.T) {
	a := &types.JobAnalysis{
		RequiredSkills:    types.FlexStrings{"PyTorch", "Experience with CUDA kernels"},
		ToolsTechnologies: types.FlexStrings{"Docker"},
	}

	tags := DeriveTags(a)

	assert.Contains(t, tags, "pytorch")
	assert.Contains(t, tags, "deep-learning")
	assert.Contains(t, tags, "cuda")
	assert.Contains(t, tags, "gpu")
	assert.Contains(t, tags, "docker")
	assert.True(t, sortedStrings(tags), "tag set is sorted for determinism")
}

func TestDeriveTagsIndustryHeuristics(t *testing.T) {
	a := &types.JobAnalysis{IndustryFocus: "Edge AI for embedded devices"}

	tags := DeriveTags(a)

	assert.Contains(t, tags, "edge-ai")
	assert.Contains(t, tags, "embedded")
	assert.Contains(t, tags, "iot")
}

func TestDeriveTagsEmptyAnalysis(t *testing.T) {
	tags := DeriveTags(&types.JobAnalysis{})
	assert.Empty(t, tags)
}

func TestTagsForSkill(t *testing.T) {
	assert.Equal(t, []string{"deep-learning", "ml", "pytorch"}, TagsForSkill("PyTorch 2.x"))
	assert.Empty(t, TagsForSkill("underwater basket weaving"))
}

func sortedStrings(items []string) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			return false
		}
	}
	return true
}
