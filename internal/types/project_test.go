package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Vision Pipeline", "vision_pipeline"},
		{"  Edge   Deploy  ", "edge_deploy"},
		{"C++ Optimizer (v2)", "c_optimizer_v2"},
		{"already_slugged", "already_slugged"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	first := Slugify("Realtime Vision Pipeline!")
	second := Slugify("Realtime Vision Pipeline!")
	assert.Equal(t, first, second)
}

func TestStringListUnmarshalYAML(t *testing.T) {
	var p Project
	require.NoError(t, yaml.Unmarshal([]byte(`
title: Test
technologies:
  - PyTorch
  - OpenCV
sections: research; experience
`), &p))

	assert.Equal(t, StringList{"PyTorch", "OpenCV"}, p.Technologies)
	assert.Equal(t, StringList{"research", "experience"}, p.Sections)
}

func TestFlexScalarUnmarshalYAML(t *testing.T) {
	var p Project
	require.NoError(t, yaml.Unmarshal([]byte("title: Test\nteam_size: 4\n"), &p))
	assert.Equal(t, "4", p.TeamSize.String())

	require.NoError(t, yaml.Unmarshal([]byte("title: Test\nteam_size: 3 to 5 people\n"), &p))
	assert.Equal(t, "3 to 5 people", p.TeamSize.String())
}

func TestNormalize(t *testing.T) {
	p := Project{
		Title:         "  Vision Pipeline ",
		Technologies:  StringList{"PyTorch", " PyTorch ", "OpenCV"},
		RelevanceTags: StringList{"ML", "ml", "Computer-Vision"},
		Sections:      StringList{"Research", "research"},
	}
	p.Normalize()

	assert.Equal(t, "Vision Pipeline", p.Title)
	assert.Equal(t, "vision_pipeline", p.Slug)
	assert.Equal(t, StringList{"PyTorch", "OpenCV"}, p.Technologies)
	assert.Equal(t, StringList{"ml", "computer-vision"}, p.RelevanceTags)
	assert.Equal(t, StringList{"research"}, p.Sections)
	assert.NotEmpty(t, p.CreatedAt)
}

func TestNormalizeKeepsExplicitSlug(t *testing.T) {
	p := Project{Title: "Vision Pipeline", Slug: "custom_slug"}
	p.Normalize()
	assert.Equal(t, "custom_slug", p.Slug)
}

func TestHasSectionExact(t *testing.T) {
	p := Project{Sections: StringList{"project"}}
	assert.True(t, p.HasSection("project"))
	assert.False(t, p.HasSection("projects"), "membership is exact, not substring")
}

func TestMatchesAnyTag(t *testing.T) {
	p := Project{RelevanceTags: StringList{"ML", "edge-ai"}}
	tags := map[string]struct{}{"ml": {}}

	assert.True(t, p.MatchesAnyTag(tags))
	assert.False(t, p.MatchesAnyTag(map[string]struct{}{"nlp": {}}))
	assert.False(t, p.MatchesAnyTag(nil))
}
