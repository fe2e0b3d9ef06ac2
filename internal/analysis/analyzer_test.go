package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pilot/internal/llm"
)

type fakeClient struct {
	resp string
	err  error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.resp, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.resp, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestAnalyzeStrictParse(t *testing.T) {
	a := NewAnalyzer(&fakeClient{resp: `{
		"job_title": "ML Engineer",
		"required_skills": ["Python", "Python", "PyTorch"],
		"preferred_skills": null,
		"keywords": []
	}`}, nil)

	result, err := a.Analyze(context.Background(), "job text long enough")
	require.NoError(t, err)

	assert.Equal(t, "ML Engineer", result.JobTitle)
	assert.Equal(t, []string{"Python", "PyTorch"}, []string(result.RequiredSkills),
		"exact duplicates removed, first occurrence kept")
	assert.Equal(t, []string{"Python", "PyTorch"}, []string(result.Keywords),
		"empty keywords synthesized from the skill fields")
}

func TestAnalyzeFallbackExtractsEmbeddedObject(t *testing.T) {
	a := NewAnalyzer(&fakeClient{resp: `Here is the analysis you asked for:
{"job_title": "Data Engineer", "required_skills": ["SQL"]}
Hope that helps!`}, nil)

	result, err := a.Analyze(context.Background(), "job text long enough")
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", result.JobTitle)
	assert.Equal(t, []string{"SQL"}, []string(result.RequiredSkills))
}

func TestAnalyzeTotalFailure(t *testing.T) {
	a := NewAnalyzer(&fakeClient{resp: "I cannot analyze this posting."}, nil)

	_, err := a.Analyze(context.Background(), "job text long enough")
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}

func TestAnalyzeOracleError(t *testing.T) {
	a := NewAnalyzer(&fakeClient{err: errors.New("quota exhausted")}, nil)

	_, err := a.Analyze(context.Background(), "job text long enough")
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.ErrorContains(t, err, "quota exhausted")
}

func TestAnalyzeKeywordsIncludeIndustry(t *testing.T) {
	a := NewAnalyzer(&fakeClient{resp: `{
		"job_title": "Engineer",
		"required_skills": ["Go"],
		"industry_focus": "fintech",
		"keywords": null
	}`}, nil)

	result, err := a.Analyze(context.Background(), "job text long enough")
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "fintech"}, []string(result.Keywords))
}
