package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringsUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexStrings
	}{
		{"array", `["Python", "Go"]`, FlexStrings{"Python", "Go"}},
		{"null", `null`, nil},
		{"comma string", `"Python, Go,  Rust"`, FlexStrings{"Python", "Go", "Rust"}},
		{"empty string", `""`, FlexStrings{}},
		{"mixed array keeps strings", `["Python", 3, "Go"]`, FlexStrings{"Python", "Go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexStrings
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobAnalysisUnmarshalTolerant(t *testing.T) {
	var a JobAnalysis
	require.NoError(t, json.Unmarshal([]byte(`{
		"job_title": "ML Engineer",
		"required_skills": "Python, PyTorch",
		"preferred_skills": null,
		"tools_technologies": ["Docker"]
	}`), &a))

	assert.Equal(t, "ML Engineer", a.JobTitle)
	assert.Equal(t, FlexStrings{"Python", "PyTorch"}, a.RequiredSkills)
	assert.Nil(t, a.PreferredSkills)
	assert.Equal(t, FlexStrings{"Docker"}, a.ToolsTechnologies)
}

func TestAllSkillsDedupedOrdered(t *testing.T) {
	a := JobAnalysis{
		RequiredSkills:    FlexStrings{"Python", "PyTorch"},
		PreferredSkills:   FlexStrings{"CUDA", "Python"},
		ToolsTechnologies: FlexStrings{"Docker", "CUDA"},
	}

	assert.Equal(t, []string{"Python", "PyTorch", "CUDA", "Docker"}, a.AllSkills())
}
