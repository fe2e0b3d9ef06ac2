package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobAnalysisAccepts(t *testing.T) {
	valid := []string{
		`{"job_title": "ML Engineer", "required_skills": ["Python"]}`,
		`{"job_title": null, "required_skills": null}`,
		`{"required_skills": "Python, Go"}`,
		`{"job_title": "X", "unknown_field": 42}`,
		`{}`,
	}
	for _, doc := range valid {
		assert.NoError(t, ValidateJobAnalysis(doc), "doc %s", doc)
	}
}

func TestValidateJobAnalysisRejects(t *testing.T) {
	invalid := []string{
		`{"job_title": 42}`,
		`{"required_skills": [1, 2]}`,
		`"just a string"`,
		`not json at all`,
	}
	for _, doc := range invalid {
		assert.Error(t, ValidateJobAnalysis(doc), "doc %s", doc)
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	err := ValidateJobAnalysis(`{"job_title": 42}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "job_title")
}
