package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(candidateCount int) ComparisonRequest {
	candidates := make([]CandidateProfile, candidateCount)
	for i := range candidates {
		candidates[i] = CandidateProfile{ResumeID: "resume", RawSkills: []string{"Go"}}
	}
	return ComparisonRequest{
		Vacancy: Vacancy{
			Requirements: []RequirementSpec{{Skill: "Go", Mandatory: true}},
		},
		Candidates: candidates,
	}
}

func TestComparisonRequest_Validate(t *testing.T) {
	for _, count := range []int{2, 3, 5} {
		req := validRequest(count)
		assert.NoError(t, req.Validate(), "count %d should be valid", count)
	}

	for _, count := range []int{0, 1, 6} {
		req := validRequest(count)
		assert.Error(t, req.Validate(), "count %d should be rejected", count)
	}
}

func TestVacancy_ValidateRequirements(t *testing.T) {
	vacancy := Vacancy{
		Requirements: []RequirementSpec{
			{Skill: "Go", MinExperienceMonths: -1},
		},
	}
	require.Error(t, vacancy.Validate())

	vacancy.Requirements[0].MinExperienceMonths = 0
	assert.NoError(t, vacancy.Validate())

	vacancy.Requirements[0].Skill = ""
	assert.Error(t, vacancy.Validate())
}

func TestMatchOutcome_MandatoryMatched(t *testing.T) {
	outcome := MatchOutcome{
		MatchedSkills: []SkillMatchResult{
			{RequirementSkill: "Go", Mandatory: true},
			{RequirementSkill: "SQL", Mandatory: true},
			{RequirementSkill: "Docker", Mandatory: false},
		},
		MissingSkills: []SkillMatchResult{
			{RequirementSkill: "Java", Mandatory: true},
		},
	}

	assert.Equal(t, 2, outcome.MandatoryMatched())
}
