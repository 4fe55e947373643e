// Package taxonomy provides immutable snapshots of canonical skill taxonomies
// and organization-scoped synonym overrides.
package taxonomy

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// GeneralIndustry is the default taxonomy used when no industry is specified.
const GeneralIndustry = "general"

// Fold normalizes a skill string for lookup: surrounding whitespace trimmed,
// internal whitespace runs collapsed, lowercased.
func Fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Snapshot is a read-only view of taxonomy data, safe for concurrent use.
// A refresh builds a new Snapshot; structures handed to in-flight matching
// runs are never mutated.
type Snapshot struct {
	version    string
	industries map[string][]types.SkillDefinition
	customs    map[string][]types.CustomSynonymEntry
}

// NewSnapshot builds a Snapshot from industry skill sets and custom synonym
// entries. Skill synonyms are folded and deduplicated; input slices are copied
// so later mutation by the caller cannot leak into the snapshot.
func NewSnapshot(industries map[string][]types.SkillDefinition, customs []types.CustomSynonymEntry) *Snapshot {
	s := &Snapshot{
		version:    uuid.NewString(),
		industries: make(map[string][]types.SkillDefinition, len(industries)),
		customs:    make(map[string][]types.CustomSynonymEntry),
	}

	for industry, skills := range industries {
		key := Fold(industry)
		if key == "" {
			key = GeneralIndustry
		}
		copied := make([]types.SkillDefinition, 0, len(skills))
		for _, def := range skills {
			def.CanonicalName = strings.TrimSpace(def.CanonicalName)
			if def.CanonicalName == "" {
				continue
			}
			if def.ID == uuid.Nil {
				def.ID = uuid.New()
			}
			def.Synonyms = foldSynonyms(def.Synonyms)
			copied = append(copied, def)
		}
		s.industries[key] = copied
	}

	for _, entry := range customs {
		entry.CanonicalSkill = strings.TrimSpace(entry.CanonicalSkill)
		if entry.CanonicalSkill == "" {
			continue
		}
		entry.CustomSynonyms = foldSynonyms(entry.CustomSynonyms)
		org := Fold(entry.OrganizationID.String())
		s.customs[org] = append(s.customs[org], entry)
	}

	return s
}

// foldSynonyms folds each synonym and drops empties and duplicates,
// preserving first-occurrence order.
func foldSynonyms(synonyms []string) []string {
	out := make([]string, 0, len(synonyms))
	seen := make(map[string]struct{}, len(synonyms))
	for _, syn := range synonyms {
		folded := Fold(syn)
		if folded == "" {
			continue
		}
		if _, exists := seen[folded]; exists {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, folded)
	}
	return out
}

// Version identifies this snapshot build; refreshes produce a new version.
func (s *Snapshot) Version() string {
	return s.version
}

// SkillsForIndustry returns the skill definitions for an industry. An empty
// industryID falls back to the general taxonomy. An unknown non-empty ID
// returns a *NotFoundError.
func (s *Snapshot) SkillsForIndustry(industryID string) ([]types.SkillDefinition, error) {
	key := Fold(industryID)
	if key == "" {
		return s.industries[GeneralIndustry], nil
	}
	skills, ok := s.industries[key]
	if !ok {
		return nil, &NotFoundError{IndustryID: industryID}
	}
	return skills, nil
}

// ActiveCustomSynonyms returns the active custom synonym entries for an
// organization. Organizations with no entries get an empty slice, not an error.
func (s *Snapshot) ActiveCustomSynonyms(organizationID uuid.UUID) []types.CustomSynonymEntry {
	entries := s.customs[Fold(organizationID.String())]
	active := make([]types.CustomSynonymEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Active {
			active = append(active, entry)
		}
	}
	return active
}

// Industries lists the industry identifiers present in the snapshot, for
// diagnostics and the taxonomy read API.
func (s *Snapshot) Industries() []string {
	out := make([]string, 0, len(s.industries))
	for industry := range s.industries {
		out = append(out, industry)
	}
	return out
}
