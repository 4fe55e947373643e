package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// matchRequest is the POST /match body: one candidate against one vacancy.
type matchRequest struct {
	Vacancy   types.Vacancy          `json:"vacancy"`
	Candidate types.CandidateProfile `json:"candidate"`
}

// handleMatch runs a single candidate/vacancy match.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Vacancy.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := s.engine.Match(req.Vacancy, req.Candidate)
	if err != nil {
		s.matchErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, outcome)
}

// handleCompare runs a 2-5 candidate comparison.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.orchestrator.Compare(r.Context(), req.Vacancy, req.Candidates)
	if err != nil {
		s.matchErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListIndustries lists the industry identifiers in the snapshot.
func (s *Server) handleListIndustries(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"industries":       s.snapshot.Industries(),
		"taxonomy_version": s.snapshot.Version(),
	})
}

// handleGetIndustry returns the skill definitions for one industry.
func (s *Server) handleGetIndustry(w http.ResponseWriter, r *http.Request) {
	skills, err := s.snapshot.SkillsForIndustry(r.PathValue("industry"))
	if err != nil {
		s.matchErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// matchErrorResponse maps core errors onto HTTP statuses: contract violations
// are 400, unknown taxonomies 404, anything else 500.
func (s *Server) matchErrorResponse(w http.ResponseWriter, err error) {
	var invalid *matching.InvalidRequestError
	var notFound *taxonomy.NotFoundError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &invalid), errors.As(err, &validationErrs):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		s.errorResponse(w, http.StatusNotFound, err.Error())
	default:
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
