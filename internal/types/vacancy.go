// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// RequirementSpec is one vacancy-side skill need. Immutable for the duration of
// a matching run once the vacancy is defined.
type RequirementSpec struct {
	Skill               string `json:"skill" validate:"required,min=1"`
	Mandatory           bool   `json:"mandatory"`
	MinExperienceMonths int    `json:"min_experience_months" validate:"gte=0"`
}

// Vacancy describes a job opening and the taxonomy scope used to resolve its
// requirement skill names.
type Vacancy struct {
	Title          string            `json:"title,omitempty"`
	IndustryID     string            `json:"industry_id,omitempty"`
	OrganizationID string            `json:"organization_id,omitempty"`
	Requirements   []RequirementSpec `json:"requirements" validate:"dive"`
}

// Validate validates the Vacancy and its requirements using the validator.
func (v *Vacancy) Validate() error {
	validate := validator.New()
	return validate.Struct(v)
}
