package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-pilot/internal/types"
)

// handleListProjects returns every project in the store.
func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	projects, err := s.deps.Store.LoadAll()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"projects": projects,
		"count":    len(projects),
	})
}

// handleStatistics returns aggregate statistics over the project pool.
func (s *Server) handleStatistics(w http.ResponseWriter, _ *http.Request) {
	stats, err := s.deps.Store.Stats()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleProjectSkills returns the sorted set of unique technologies across
// the whole project pool.
func (s *Server) handleProjectSkills(w http.ResponseWriter, _ *http.Request) {
	skills, err := s.deps.Store.AllSkills()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}

// handleSearchProjects searches projects by a free-text query.
// Query parameters: q (required), limit (optional).
func (s *Server) handleSearchProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			s.errorResponse(w, http.StatusBadRequest, "query parameter 'limit' must be a non-negative integer")
			return
		}
		limit = parsed
	}

	results, err := s.deps.Store.Search(query, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"projects": results,
		"count":    len(results),
	})
}

// handleGetProject returns one project by exact title, case-insensitively.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	project, err := s.deps.Store.ByTitle(title)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "project not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

// handleProjectsByTechnology returns projects using a technology, matched
// case-insensitively by substring.
func (s *Server) handleProjectsByTechnology(w http.ResponseWriter, r *http.Request) {
	tech := r.PathValue("tech")

	results, err := s.deps.Store.ByTechnology(tech)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"projects": results,
		"count":    len(results),
	})
}

// handleCreateProject persists a new project record.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.deps.Store.Save(&req.Project); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, req.Project)
}
