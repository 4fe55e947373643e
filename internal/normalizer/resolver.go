// Package normalizer resolves raw skill mentions against a taxonomy snapshot
// using tiered exact, synonym, and bounded fuzzy matching.
package normalizer

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Tier identifies which resolution tier produced a result.
type Tier string

// Resolution tiers, in precedence order.
const (
	TierExact         Tier = "exact"
	TierCustomSynonym Tier = "custom_synonym"
	TierSynonym       Tier = "synonym"
	TierFuzzy         Tier = "fuzzy"
	TierUnresolved    Tier = "unresolved"
)

// Resolution is the outcome of resolving one raw skill string. Unresolved is a
// value, not an error: callers keep the raw mention as a candidate-only skill.
type Resolution struct {
	Canonical string
	Tier      Tier
	Resolved  bool
}

// Options controls the optional fuzzy tier.
type Options struct {
	FuzzyEnabled bool
	FuzzyBound   int
}

// DefaultOptions enables fuzzy matching with an edit-distance bound of 2.
func DefaultOptions() Options {
	return Options{FuzzyEnabled: true, FuzzyBound: 2}
}

// fuzzyCandidate is one comparable form (canonical name or synonym) and the
// canonical skill it maps to.
type fuzzyCandidate struct {
	form      string
	canonical string
}

// Resolver resolves raw skills within one industry/organization scope. Build
// once per matching run; all lookups read the immutable snapshot handed in at
// construction, so a Resolver is safe for concurrent use.
type Resolver struct {
	canonical map[string]string
	custom    map[string]string
	builtin   map[string]string
	fuzzy     []fuzzyCandidate
	opts      Options
}

// New builds a Resolver scoped to the given industry and organization.
// Returns the snapshot's *taxonomy.NotFoundError for unknown industries.
func New(snapshot *taxonomy.Snapshot, industryID string, organizationID uuid.UUID, opts Options) (*Resolver, error) {
	skills, err := snapshot.SkillsForIndustry(industryID)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		canonical: make(map[string]string),
		custom:    make(map[string]string),
		builtin:   make(map[string]string),
		opts:      opts,
	}

	for _, def := range skills {
		r.indexSkill(def)
	}
	if organizationID != uuid.Nil {
		for _, entry := range snapshot.ActiveCustomSynonyms(organizationID) {
			r.indexCustomEntry(entry)
		}
	}

	return r, nil
}

// indexSkill adds a skill definition's canonical name and synonyms to the
// lookup maps. First writer wins so iteration order stays authoritative.
func (r *Resolver) indexSkill(def types.SkillDefinition) {
	key := taxonomy.Fold(def.CanonicalName)
	if key == "" {
		return
	}
	if _, exists := r.canonical[key]; !exists {
		r.canonical[key] = def.CanonicalName
		r.fuzzy = append(r.fuzzy, fuzzyCandidate{form: key, canonical: def.CanonicalName})
	}
	for _, syn := range def.Synonyms {
		if _, exists := r.builtin[syn]; !exists {
			r.builtin[syn] = def.CanonicalName
			r.fuzzy = append(r.fuzzy, fuzzyCandidate{form: syn, canonical: def.CanonicalName})
		}
	}
}

func (r *Resolver) indexCustomEntry(entry types.CustomSynonymEntry) {
	for _, syn := range entry.CustomSynonyms {
		if _, exists := r.custom[syn]; !exists {
			r.custom[syn] = entry.CanonicalSkill
		}
	}
}

// Resolve maps a raw skill mention to a canonical skill, or marks it
// unresolved. Tiers are tried in order: exact canonical, organization custom
// synonym, built-in synonym, bounded fuzzy. Custom synonyms are checked before
// built-in ones so organization overrides win ties. Inputs are compared as
// whole strings; word order matters.
func (r *Resolver) Resolve(raw string) Resolution {
	folded := taxonomy.Fold(raw)
	if folded == "" {
		return Resolution{Tier: TierUnresolved}
	}

	if canonical, ok := r.canonical[folded]; ok {
		return Resolution{Canonical: canonical, Tier: TierExact, Resolved: true}
	}
	if canonical, ok := r.custom[folded]; ok {
		return Resolution{Canonical: canonical, Tier: TierCustomSynonym, Resolved: true}
	}
	if canonical, ok := r.builtin[folded]; ok {
		return Resolution{Canonical: canonical, Tier: TierSynonym, Resolved: true}
	}
	if r.opts.FuzzyEnabled {
		if canonical, ok := r.resolveFuzzy(folded); ok {
			return Resolution{Canonical: canonical, Tier: TierFuzzy, Resolved: true}
		}
	}

	return Resolution{Tier: TierUnresolved}
}

// resolveFuzzy finds the closest canonical form within the edit-distance
// bound. Ties on distance go to the lexicographically first canonical name
// for determinism.
func (r *Resolver) resolveFuzzy(folded string) (string, bool) {
	bound := r.opts.FuzzyBound
	if bound <= 0 {
		return "", false
	}

	bestDistance := bound + 1
	bestCanonical := ""
	for _, cand := range r.fuzzy {
		lenDiff := len(cand.form) - len(folded)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > bound {
			continue
		}
		distance := boundedLevenshtein(folded, cand.form, bound)
		if distance < 0 {
			continue
		}
		if distance < bestDistance || (distance == bestDistance && cand.canonical < bestCanonical) {
			bestDistance = distance
			bestCanonical = cand.canonical
		}
	}

	if bestDistance > bound {
		return "", false
	}
	return bestCanonical, true
}
