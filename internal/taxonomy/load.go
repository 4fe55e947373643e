package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/types"
)

// taxonomyFileSchema is the JSON Schema a taxonomy document must satisfy
// before a snapshot is built from it.
const taxonomyFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["industries"],
  "properties": {
    "industries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "skills"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "skills": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["canonical_name"],
              "properties": {
                "canonical_name": {"type": "string", "minLength": 1},
                "category": {"type": "string"},
                "synonyms": {"type": "array", "items": {"type": "string"}}
              }
            }
          }
        }
      }
    },
    "custom_synonyms": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["organization_id", "canonical_skill", "custom_synonyms"],
        "properties": {
          "organization_id": {"type": "string", "minLength": 1},
          "canonical_skill": {"type": "string", "minLength": 1},
          "custom_synonyms": {"type": "array", "items": {"type": "string"}},
          "active": {"type": "boolean"}
        }
      }
    }
  }
}`

// taxonomyDocument mirrors the on-disk taxonomy file layout.
type taxonomyDocument struct {
	Industries []struct {
		ID     string                  `json:"id"`
		Skills []types.SkillDefinition `json:"skills"`
	} `json:"industries"`
	CustomSynonyms []types.CustomSynonymEntry `json:"custom_synonyms"`
}

// LoadFile reads a taxonomy JSON file, validates it against the taxonomy
// schema, and builds an immutable Snapshot from it.
func LoadFile(path string) (*Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return LoadJSON(content)
}

// LoadJSON validates raw taxonomy JSON and builds a Snapshot.
func LoadJSON(content []byte) (*Snapshot, error) {
	if err := validateDocument(content); err != nil {
		return nil, err
	}

	var doc taxonomyDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	industries := make(map[string][]types.SkillDefinition, len(doc.Industries))
	for _, industry := range doc.Industries {
		industries[industry.ID] = append(industries[industry.ID], industry.Skills...)
	}

	return NewSnapshot(industries, doc.CustomSynonyms), nil
}

// validateDocument checks raw content against taxonomyFileSchema.
func validateDocument(content []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(taxonomyFileSchema)
	documentLoader := gojsonschema.NewBytesLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	descriptions := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		descriptions = append(descriptions, desc.String())
	}
	return &LoadError{
		Message: fmt.Sprintf("taxonomy document invalid: %s", strings.Join(descriptions, "; ")),
	}
}
