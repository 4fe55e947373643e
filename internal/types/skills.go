// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// SkillDefinition represents one canonical skill in an industry taxonomy.
// Synonyms are case/whitespace-normalized when the taxonomy snapshot is built.
type SkillDefinition struct {
	ID            uuid.UUID `json:"id"`
	CanonicalName string    `json:"canonical_name"`
	Category      string    `json:"category,omitempty"`
	Synonyms      []string  `json:"synonyms,omitempty"`
}

// CustomSynonymEntry is an organization-scoped synonym override for a canonical skill.
// Entries with Active=false are ignored by taxonomy lookups.
type CustomSynonymEntry struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	CanonicalSkill string    `json:"canonical_skill"`
	CustomSynonyms []string  `json:"custom_synonyms"`
	Active         bool      `json:"active"`
}
