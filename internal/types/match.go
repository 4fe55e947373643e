// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchStatus indicates whether a vacancy requirement was satisfied by the candidate.
type MatchStatus string

// Match statuses for a single requirement.
const (
	StatusMatched MatchStatus = "matched"
	StatusMissing MatchStatus = "missing"
)

// Assessment is the coarse bucketing of a match percentage.
type Assessment string

// Overall assessment buckets, from best to worst.
const (
	AssessmentStrong  Assessment = "strong_match"
	AssessmentPartial Assessment = "partial_match"
	AssessmentWeak    Assessment = "weak_match"
	AssessmentNone    Assessment = "no_match"
)

// SkillMatchResult records how one vacancy requirement fared against a candidate.
// CanonicalCandidateSkill is empty when the requirement is missing or when the
// candidate's mention never resolved against the taxonomy.
type SkillMatchResult struct {
	RequirementSkill          string      `json:"requirement_skill"`
	CanonicalCandidateSkill   string      `json:"canonical_candidate_skill,omitempty"`
	Status                    MatchStatus `json:"status"`
	Mandatory                 bool        `json:"mandatory"`
	CandidateExperienceMonths int         `json:"candidate_experience_months"`
	RequiredExperienceMonths  int         `json:"required_experience_months"`
	MeetsExperience           bool        `json:"meets_experience"`
}

// MatchOutcome is the engine's full result for one candidate against one vacancy.
// Derived and stateless; recomputed on demand, never persisted by the core.
type MatchOutcome struct {
	ResumeID          string             `json:"resume_id"`
	MatchedSkills     []SkillMatchResult `json:"matched_skills"`
	MissingSkills     []SkillMatchResult `json:"missing_skills"`
	ExtraSkills       []string           `json:"extra_skills,omitempty"`
	MatchPercentage   float64            `json:"match_percentage"`
	OverallAssessment Assessment         `json:"overall_assessment"`
}

// MandatoryMatched counts matched mandatory requirements; used as a ranking tie-break.
func (o *MatchOutcome) MandatoryMatched() int {
	count := 0
	for _, m := range o.MatchedSkills {
		if m.Mandatory {
			count++
		}
	}
	return count
}
