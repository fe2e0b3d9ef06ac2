package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AnalyzeJobRequest represents the request body for POST /analyze-job
// and POST /rank-projects. Either the description text or a posting URL
// must be supplied.
type AnalyzeJobRequest struct {
	JobDescription string `json:"job_description,omitempty" validate:"omitempty,min=20"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// GenerateResumeRequest represents the request body for POST /generate-resume.
type GenerateResumeRequest struct {
	JobDescription   string   `json:"job_description,omitempty" validate:"omitempty,min=20"`
	JobURL           string   `json:"job_url,omitempty" validate:"omitempty,url"`
	IncludeSections  []string `json:"include_sections" validate:"required,min=1,dive,oneof=summary research experience projects skills"`
	MaxPerSection    int      `json:"max_projects_per_section,omitempty" validate:"omitempty,min=1,max=10"`
	CandidateSkills  []string `json:"candidate_skills,omitempty"`
	SeparateProjects *bool    `json:"separate_projects_pool,omitempty"`
}

// CoverLetterRequest represents the request body for POST /generate-cover-letter
// and POST /cover-letter-intro.
type CoverLetterRequest struct {
	JobDescription string            `json:"job_description" validate:"required,min=20"`
	CandidateName  string            `json:"candidate_name" validate:"required"`
	ResumeSections map[string]string `json:"candidate_resume_sections,omitempty"`
	CompanyName    string            `json:"company_name,omitempty"`
	JobTitle       string            `json:"job_title,omitempty"`
	Tone           string            `json:"tone,omitempty" validate:"omitempty,oneof=professional enthusiastic formal"`
}

// ScoreResumeRequest represents the request body for POST /score-resume.
type ScoreResumeRequest struct {
	JobDescription string            `json:"job_description" validate:"required,min=20"`
	ResumeSections map[string]string `json:"resume_sections" validate:"required,min=1"`
}

// OptimizeSectionRequest represents the request body for POST /optimize-section.
type OptimizeSectionRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=20"`
	SectionName    string `json:"section_name" validate:"required"`
	Content        string `json:"content" validate:"required"`
}

// SuggestImprovementsRequest represents the request body for
// POST /suggest-improvements.
type SuggestImprovementsRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=20"`
	SectionName    string `json:"section_name" validate:"required"`
	Content        string `json:"content" validate:"required"`
}

// CreateProjectRequest represents the request body for POST /projects.
type CreateProjectRequest struct {
	Project Project `json:"project"`
}

// Validate validates the AnalyzeJobRequest using the validator.
func (r *AnalyzeJobRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.JobDescription == "" && r.JobURL == "" {
		return fmt.Errorf("either job_description or job_url is required")
	}
	return nil
}

// Validate validates the GenerateResumeRequest using the validator.
func (r *GenerateResumeRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.JobDescription == "" && r.JobURL == "" {
		return fmt.Errorf("either job_description or job_url is required")
	}
	return nil
}

// Validate validates the CoverLetterRequest using the validator.
func (r *CoverLetterRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ScoreResumeRequest using the validator.
func (r *ScoreResumeRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the OptimizeSectionRequest using the validator.
func (r *OptimizeSectionRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the SuggestImprovementsRequest using the validator.
func (r *SuggestImprovementsRequest) Validate() error {
	return validator.New().Struct(r)
}
