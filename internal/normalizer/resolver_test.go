package normalizer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

var testOrgID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func testResolver(t *testing.T, opts Options) *Resolver {
	t.Helper()

	snapshot := taxonomy.NewSnapshot(
		map[string][]types.SkillDefinition{
			"general": {
				{CanonicalName: "SQL", Synonyms: []string{"PostgreSQL", "MySQL"}},
				{CanonicalName: "Python", Synonyms: []string{"py"}},
				{CanonicalName: "Full Stack Developer"},
				{CanonicalName: "Rust", Synonyms: []string{"rust-lang"}},
			},
		},
		[]types.CustomSynonymEntry{
			// "postgresql" collides with the built-in SQL synonym on purpose:
			// the org maps it to their in-house name instead.
			{OrganizationID: testOrgID, CanonicalSkill: "Postgres Platform", CustomSynonyms: []string{"postgresql"}, Active: true},
			{OrganizationID: testOrgID, CanonicalSkill: "Python", CustomSynonyms: []string{"snake-lang"}, Active: true},
		},
	)

	r, err := New(snapshot, "", testOrgID, opts)
	require.NoError(t, err)
	return r
}

func TestResolve_ExactCanonicalMatch(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	res := r.Resolve("  sql ")
	assert.True(t, res.Resolved)
	assert.Equal(t, "SQL", res.Canonical)
	assert.Equal(t, TierExact, res.Tier)
}

func TestResolve_BuiltinSynonym(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	res := r.Resolve("MySQL")
	assert.True(t, res.Resolved)
	assert.Equal(t, "SQL", res.Canonical)
	assert.Equal(t, TierSynonym, res.Tier)
}

func TestResolve_CustomSynonymWinsOverBuiltin(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	// Both the org's custom entry and the built-in SQL synonym list contain
	// "postgresql"; the custom entry must win.
	res := r.Resolve("PostgreSQL")
	assert.True(t, res.Resolved)
	assert.Equal(t, "Postgres Platform", res.Canonical)
	assert.Equal(t, TierCustomSynonym, res.Tier)
}

func TestResolve_CustomSynonymForOwnSkill(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	res := r.Resolve("snake-lang")
	assert.Equal(t, "Python", res.Canonical)
	assert.Equal(t, TierCustomSynonym, res.Tier)
}

func TestResolve_NoCustomsWithoutOrgScope(t *testing.T) {
	snapshot := taxonomy.NewSnapshot(
		map[string][]types.SkillDefinition{
			"general": {{CanonicalName: "SQL", Synonyms: []string{"PostgreSQL"}}},
		},
		[]types.CustomSynonymEntry{
			{OrganizationID: testOrgID, CanonicalSkill: "Other", CustomSynonyms: []string{"postgresql"}, Active: true},
		},
	)

	r, err := New(snapshot, "", uuid.Nil, DefaultOptions())
	require.NoError(t, err)

	res := r.Resolve("PostgreSQL")
	assert.Equal(t, "SQL", res.Canonical)
	assert.Equal(t, TierSynonym, res.Tier)
}

func TestResolve_FuzzyTypo(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	res := r.Resolve("Pyton")
	assert.True(t, res.Resolved)
	assert.Equal(t, "Python", res.Canonical)
	assert.Equal(t, TierFuzzy, res.Tier)
}

func TestResolve_FuzzyDisabled(t *testing.T) {
	r := testResolver(t, Options{FuzzyEnabled: false})

	res := r.Resolve("Pyton")
	assert.False(t, res.Resolved)
	assert.Equal(t, TierUnresolved, res.Tier)
}

func TestResolve_FuzzyRespectsBound(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	// "pythonista" is within a few edits of nothing, and the length-difference
	// cap keeps it from even being compared against "python".
	res := r.Resolve("pythonista")
	assert.False(t, res.Resolved)
}

func TestResolve_FuzzyTieBreaksLexicographically(t *testing.T) {
	snapshot := taxonomy.NewSnapshot(map[string][]types.SkillDefinition{
		"general": {
			{CanonicalName: "Rest"},
			{CanonicalName: "Rust"},
		},
	}, nil)
	r, err := New(snapshot, "", uuid.Nil, DefaultOptions())
	require.NoError(t, err)

	// "rost" is one edit from both; lexicographically first canonical wins.
	res := r.Resolve("rost")
	assert.True(t, res.Resolved)
	assert.Equal(t, "Rest", res.Canonical)
}

func TestResolve_EmptyInputUnresolved(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	for _, input := range []string{"", "   ", "\t"} {
		res := r.Resolve(input)
		assert.False(t, res.Resolved)
		assert.Equal(t, TierUnresolved, res.Tier)
	}
}

func TestResolve_WordOrderMatters(t *testing.T) {
	r := testResolver(t, DefaultOptions())

	// Whole-string comparison only: reordered words do not match.
	res := r.Resolve("Developer Full Stack")
	assert.False(t, res.Resolved)
}

func TestNew_UnknownIndustry(t *testing.T) {
	snapshot := taxonomy.NewSnapshot(map[string][]types.SkillDefinition{
		"general": {{CanonicalName: "SQL"}},
	}, nil)

	_, err := New(snapshot, "aviation", uuid.Nil, DefaultOptions())
	var notFound *taxonomy.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
