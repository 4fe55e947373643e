package taxonomy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func testSnapshot() *Snapshot {
	orgID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return NewSnapshot(
		map[string][]types.SkillDefinition{
			"general": {
				{CanonicalName: "SQL", Synonyms: []string{"PostgreSQL", "MySQL "}},
				{CanonicalName: "Go", Synonyms: []string{"golang"}},
			},
			"Finance": {
				{CanonicalName: "Risk Modeling"},
			},
		},
		[]types.CustomSynonymEntry{
			{OrganizationID: orgID, CanonicalSkill: "Go", CustomSynonyms: []string{"our-backend-lang"}, Active: true},
			{OrganizationID: orgID, CanonicalSkill: "SQL", CustomSynonyms: []string{"db-stuff"}, Active: false},
		},
	)
}

func TestSkillsForIndustry_EmptyFallsBackToGeneral(t *testing.T) {
	snapshot := testSnapshot()

	skills, err := snapshot.SkillsForIndustry("")
	require.NoError(t, err)
	assert.Len(t, skills, 2)
}

func TestSkillsForIndustry_CaseInsensitiveLookup(t *testing.T) {
	snapshot := testSnapshot()

	skills, err := snapshot.SkillsForIndustry("  FINANCE ")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Risk Modeling", skills[0].CanonicalName)
}

func TestSkillsForIndustry_UnknownIndustry(t *testing.T) {
	snapshot := testSnapshot()

	_, err := snapshot.SkillsForIndustry("aviation")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "aviation", notFound.IndustryID)
}

func TestNewSnapshot_SynonymsFoldedAndDeduplicated(t *testing.T) {
	snapshot := NewSnapshot(map[string][]types.SkillDefinition{
		"general": {
			{CanonicalName: "SQL", Synonyms: []string{" PostgreSQL ", "postgresql", "", "MySQL"}},
		},
	}, nil)

	skills, err := snapshot.SkillsForIndustry("general")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, []string{"postgresql", "mysql"}, skills[0].Synonyms)
}

func TestNewSnapshot_AssignsMissingSkillIDs(t *testing.T) {
	snapshot := NewSnapshot(map[string][]types.SkillDefinition{
		"general": {{CanonicalName: "Go"}},
	}, nil)

	skills, err := snapshot.SkillsForIndustry("")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.NotEqual(t, uuid.Nil, skills[0].ID)
}

func TestActiveCustomSynonyms_ExcludesInactive(t *testing.T) {
	snapshot := testSnapshot()
	orgID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	entries := snapshot.ActiveCustomSynonyms(orgID)
	require.Len(t, entries, 1)
	assert.Equal(t, "Go", entries[0].CanonicalSkill)
	assert.Equal(t, []string{"our-backend-lang"}, entries[0].CustomSynonyms)
}

func TestActiveCustomSynonyms_UnknownOrgIsEmpty(t *testing.T) {
	snapshot := testSnapshot()

	entries := snapshot.ActiveCustomSynonyms(uuid.New())
	assert.Empty(t, entries)
}

func TestSnapshot_VersionsDiffer(t *testing.T) {
	a := testSnapshot()
	b := testSnapshot()
	assert.NotEqual(t, a.Version(), b.Version())
}

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  SQL  ", "sql"},
		{"Full   Stack Developer", "full stack developer"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Fold(tt.input))
	}
}
