package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintMatchOutcome(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchOutcome(&types.MatchOutcome{
		ResumeID:          "resume-1",
		MatchPercentage:   80,
		OverallAssessment: types.AssessmentStrong,
		MatchedSkills: []types.SkillMatchResult{
			{RequirementSkill: "Java", Status: types.StatusMatched, CandidateExperienceMonths: 47, RequiredExperienceMonths: 36, MeetsExperience: true},
		},
		MissingSkills: []types.SkillMatchResult{
			{RequirementSkill: "Python", Status: types.StatusMissing},
		},
		ExtraSkills: []string{"Haskell"},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH OUTCOME")
	assert.Contains(t, out, "resume-1")
	assert.Contains(t, out, "80.0%")
	assert.Contains(t, out, "Java (47/36 mo)")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Haskell")
}

func TestPrintMatchOutcome_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchOutcome(nil)
	assert.Empty(t, buf.String())
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComparison(&types.ComparisonResult{
		Ranked: []types.MatchOutcome{
			{ResumeID: "strong", MatchPercentage: 90, OverallAssessment: types.AssessmentStrong},
			{ResumeID: "weak", MatchPercentage: 40, OverallAssessment: types.AssessmentWeak},
		},
		AllUniqueSkills: []string{"Go", "SQL"},
		ProcessingMS:    3,
	})

	out := buf.String()
	assert.Contains(t, out, "RANKED COMPARISON")
	assert.Contains(t, out, "#1  strong")
	assert.Contains(t, out, "#2  weak")
	assert.Contains(t, out, "Go, SQL")
}
