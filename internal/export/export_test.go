package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/jonathan/resume-pilot/internal/writer"
)

func testResult() *writer.ResumeResult {
	return &writer.ResumeResult{
		Sections: map[string]string{
			"summary":    "Seasoned engineer.",
			"experience": "EXPERIENCE\n- Built systems.",
		},
		JobAnalysis: &types.JobAnalysis{JobTitle: "ML Engineer"},
		JobTags:     []string{"ml"},
	}
}

func TestRenderMarkdownOrdersSections(t *testing.T) {
	md := RenderMarkdown(testResult())

	assert.True(t, strings.HasPrefix(md, "# Resume: ML Engineer"))
	summaryIdx := strings.Index(md, "## Summary")
	expIdx := strings.Index(md, "## Experience")
	require.Positive(t, summaryIdx)
	require.Positive(t, expIdx)
	assert.Less(t, summaryIdx, expIdx)
	assert.NotContains(t, md, "## Skills", "absent sections are skipped")
}

func TestMarkdownExportWritesFile(t *testing.T) {
	e, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	path, err := e.Markdown(testResult())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Seasoned engineer.")
	assert.Contains(t, path, "resume_ml_engineer_")
	assert.True(t, strings.HasSuffix(path, ".md"))
}

func TestJSONExportRoundTrips(t *testing.T) {
	e, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	path, err := e.JSON(testResult())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded writer.ResumeResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Seasoned engineer.", decoded.Sections["summary"])
	assert.Equal(t, []string{"ml"}, decoded.JobTags)
}
