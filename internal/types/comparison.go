// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// ComparisonRequest asks for 2-5 candidates to be matched and ranked against one
// vacancy. The candidate bound is a deliberate product constraint, enforced here
// and again by the orchestrator.
type ComparisonRequest struct {
	Vacancy    Vacancy            `json:"vacancy" validate:"required"`
	Candidates []CandidateProfile `json:"candidates" validate:"required,min=2,max=5,dive"`
}

// Validate validates the ComparisonRequest using the validator.
func (r *ComparisonRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ComparisonResult is the orchestrator's ranked output for one vacancy.
// AllUniqueSkills is the sorted union of canonical and candidate-only skills
// seen across every candidate, for skill-matrix views.
type ComparisonResult struct {
	Ranked          []MatchOutcome `json:"ranked"`
	AllUniqueSkills []string       `json:"all_unique_skills"`
	ProcessingMS    int64          `json:"processing_ms"`
}
