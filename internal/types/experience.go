// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ExperienceInterval is one dated span of skill or role usage extracted from a resume.
// A nil End means the engagement is ongoing and is resolved to "now" at computation time.
type ExperienceInterval struct {
	SkillLabel string     `json:"skill_label"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
}

// CandidateProfile is the extraction collaborator's per-resume output: raw skill
// mentions (possibly duplicated) plus dated experience intervals. The core never
// mutates a profile.
type CandidateProfile struct {
	ResumeID            string               `json:"resume_id"`
	RawSkills           []string             `json:"raw_skills"`
	ExperienceIntervals []ExperienceInterval `json:"experience_intervals,omitempty"`
}
