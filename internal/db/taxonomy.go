package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// LoadSnapshot reads the full taxonomy (skill definitions, synonyms, custom
// synonym entries) into an immutable snapshot. Refreshing taxonomy data means
// calling this again and swapping the snapshot; nothing handed out earlier is
// mutated.
func (db *DB) LoadSnapshot(ctx context.Context) (*taxonomy.Snapshot, error) {
	industries, err := db.loadSkillDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	customs, err := db.loadCustomSynonyms(ctx)
	if err != nil {
		return nil, err
	}

	return taxonomy.NewSnapshot(industries, customs), nil
}

// loadSkillDefinitions reads skill rows with their synonyms, grouped by industry.
func (db *DB) loadSkillDefinitions(ctx context.Context) (map[string][]types.SkillDefinition, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.id, s.industry_id, s.canonical_name, s.category,
		        COALESCE(array_agg(sy.synonym) FILTER (WHERE sy.synonym IS NOT NULL), '{}')
		 FROM skill_definitions s
		 LEFT JOIN skill_synonyms sy ON sy.skill_id = s.id
		 GROUP BY s.id, s.industry_id, s.canonical_name, s.category
		 ORDER BY s.industry_id, s.canonical_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill definitions: %w", err)
	}
	defer rows.Close()

	industries := make(map[string][]types.SkillDefinition)
	for rows.Next() {
		var def types.SkillDefinition
		var industryID string
		if err := rows.Scan(&def.ID, &industryID, &def.CanonicalName, &def.Category, &def.Synonyms); err != nil {
			return nil, fmt.Errorf("failed to scan skill definition: %w", err)
		}
		industries[industryID] = append(industries[industryID], def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill definitions: %w", err)
	}

	return industries, nil
}

// loadCustomSynonyms reads organization synonym overrides. Inactive entries
// are loaded too; the snapshot filters them at lookup time so an admin
// re-activation only needs a snapshot rebuild.
func (db *DB) loadCustomSynonyms(ctx context.Context) ([]types.CustomSynonymEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT organization_id, canonical_skill, custom_synonyms, active
		 FROM custom_synonyms
		 ORDER BY organization_id, canonical_skill`)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom synonyms: %w", err)
	}
	defer rows.Close()

	var entries []types.CustomSynonymEntry
	for rows.Next() {
		var entry types.CustomSynonymEntry
		var orgID uuid.UUID
		if err := rows.Scan(&orgID, &entry.CanonicalSkill, &entry.CustomSynonyms, &entry.Active); err != nil {
			return nil, fmt.Errorf("failed to scan custom synonym entry: %w", err)
		}
		entry.OrganizationID = orgID
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read custom synonyms: %w", err)
	}

	return entries, nil
}
