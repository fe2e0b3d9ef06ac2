package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/analysis"
	"github.com/jonathan/resume-pilot/internal/db"
	"github.com/jonathan/resume-pilot/internal/ingestion"
	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/jonathan/resume-pilot/internal/writer"
)

// httpStatus maps service errors onto HTTP status codes. Oracle-side and
// upstream fetch failures surface as bad gateway; everything unrecognized
// is internal.
func httpStatus(err error) int {
	var extractionErr *analysis.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusBadGateway
	}
	var apiErr *llm.APICallError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	var fetchErr *ingestion.FetchError
	if errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{ Validate() error }) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := dst.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// resolveJobDescription returns the inline description when present,
// otherwise fetches and extracts the posting behind jobURL.
func (s *Server) resolveJobDescription(r *http.Request, description, jobURL string) (string, error) {
	if description != "" {
		return description, nil
	}
	if s.deps.Fetcher == nil {
		return "", errors.New("job URL ingestion is not configured")
	}
	return s.deps.Fetcher.FetchJobPosting(r.Context(), jobURL)
}

// handleAnalyzeJob extracts structured fields and tags from a job description.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeJobRequest
	if !s.decode(w, r, &req) {
		return
	}

	description, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	jobAnalysis, err := s.deps.Analyzer.Analyze(r.Context(), description)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis": jobAnalysis,
		"job_tags": analysis.DeriveTags(jobAnalysis),
	})
}

// handleRankProjects ranks the whole project pool against a job description.
func (s *Server) handleRankProjects(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeJobRequest
	if !s.decode(w, r, &req) {
		return
	}

	description, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	projects, err := s.deps.Store.LoadAll()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	ranked, err := s.deps.Ranker.Rank(r.Context(), description, projects)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"ranked_projects": ranked})
}

// handleRecommendations returns ranked projects plus analysis and statistics.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeJobRequest
	if !s.decode(w, r, &req) {
		return
	}

	description, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	recs, err := s.deps.Ranker.Recommendations(r.Context(), description)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, recs)
}

// handleGenerateResume runs the full generation pipeline. A successful run
// is archived best effort when the database is configured.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateResumeRequest
	if !s.decode(w, r, &req) {
		return
	}

	description, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	req.JobDescription = description

	result, err := s.deps.Writer.GenerateResume(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	if s.deps.Archive != nil {
		s.archiveRun(r, result)
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) archiveRun(r *http.Request, result *writer.ResumeResult) {
	run := &db.GenerationRun{
		JobTitle:      result.JobAnalysis.JobTitle,
		Company:       result.JobAnalysis.Company,
		JobTags:       result.JobTags,
		Sections:      result.Sections,
		SelectedCount: result.SelectedCount,
	}
	for _, slugs := range result.SectionProjects {
		run.SelectedSlugs = append(run.SelectedSlugs, slugs...)
	}
	if _, err := s.deps.Archive.SaveRun(r.Context(), run); err != nil {
		s.logger.Warn("failed to archive generation run", zap.Error(err))
	}
}

// handleGenerateCoverLetter generates a cover letter for the request.
func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req types.CoverLetterRequest
	if !s.decode(w, r, &req) {
		return
	}

	letter, err := s.deps.Writer.CoverLetter(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"cover_letter": letter})
}

// handleCoverLetterIntro generates only the opening paragraph, for callers
// that compose their own letter body.
func (s *Server) handleCoverLetterIntro(w http.ResponseWriter, r *http.Request) {
	var req types.CoverLetterRequest
	if !s.decode(w, r, &req) {
		return
	}

	intro, err := s.deps.Writer.CoverLetterIntro(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"cover_letter_intro": intro})
}

// handleScoreResume scores supplied resume sections against a job description.
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreResumeRequest
	if !s.decode(w, r, &req) {
		return
	}

	score, err := s.deps.Scorer.Score(r.Context(), req.JobDescription, req.ResumeSections)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// handleOptimizeSection rewrites an existing section against the job. The
// writer keeps the original text when the rewrite fails, so the response is
// always usable content.
func (s *Server) handleOptimizeSection(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizeSectionRequest
	if !s.decode(w, r, &req) {
		return
	}

	jobAnalysis, err := s.deps.Analyzer.Analyze(r.Context(), req.JobDescription)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	optimized := s.deps.Writer.OptimizeSection(r.Context(), req.SectionName, req.Content, req.JobDescription, jobAnalysis)
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"section_name":      req.SectionName,
		"optimized_content": optimized,
	})
}

// handleSuggestImprovements returns advisory feedback on a resume section.
func (s *Server) handleSuggestImprovements(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestImprovementsRequest
	if !s.decode(w, r, &req) {
		return
	}

	suggestions, err := s.deps.Writer.SuggestImprovements(r.Context(), req.SectionName, req.Content, req.JobDescription)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"section_name": req.SectionName,
		"suggestions":  suggestions,
	})
}

// handleListRuns returns recent archived generation runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.deps.Archive == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run archive is not configured")
		return
	}

	runs, err := s.deps.Archive.ListRuns(r.Context(), 20)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.GenerationRun{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one archived generation run with its section bodies.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.deps.Archive == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run archive is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "run id must be a UUID")
		return
	}

	run, err := s.deps.Archive.GetRun(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}
