package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownPrompts(t *testing.T) {
	for _, key := range []string{"extract-job-description", "suggest-improvements"} {
		prompt, err := Get("analysis.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("analysis.json", "no-such-prompt")
	assert.Error(t, err)

	_, err = Get("missing.json", "extract-job-description")
	assert.Error(t, err)
}

func TestSectionPromptsHavePlaceholders(t *testing.T) {
	for _, key := range []string{"experience", "research", "projects", "skills", "summary"} {
		prompt := MustGet("sections.json", key)
		assert.Contains(t, prompt, "{{.JobTitle}}", "section %s", key)
	}
}

func TestFormat(t *testing.T) {
	got := Format("Hello {{.Name}}, the role is {{.Role}}.", map[string]string{
		"Name": "Jordan",
		"Role": "ML Engineer",
	})
	assert.Equal(t, "Hello Jordan, the role is ML Engineer.", got)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	got := Format("Keep {{.Unknown}} as is.", map[string]string{"Other": "x"})
	assert.Equal(t, "Keep {{.Unknown}} as is.", got)
}

func TestList(t *testing.T) {
	keys, err := List("sections.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "optimize")
}
