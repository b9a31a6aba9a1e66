package lingodex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TranslationsField is the reserved nested field holding per-locale
// {locale, value} pairs.
const TranslationsField = "translations"

// Property is one field's type metadata within an index mapping.
type Property struct {
	Type       string              `yaml:"type" json:"type,omitempty"`
	Properties map[string]Property `yaml:"properties" json:"properties,omitempty"`
}

// Mapping is a read-only index field schema, shaped like the store's own
// mapping document: field name → type metadata.
type Mapping struct {
	Properties map[string]Property `yaml:"properties" json:"properties"`
}

// FieldSet is an immutable set of field names.
type FieldSet map[string]struct{}

// Contains reports whether name is in the set.
func (s FieldSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// TranslatedFields extracts the inner field names declared under the
// reserved translations nested property. A missing, non-nested or
// malformed translations property yields an empty set: the index
// degrades to plain-field search instead of failing the request.
func (m Mapping) TranslatedFields() FieldSet {
	p, ok := m.Properties[TranslationsField]
	if !ok || p.Type != "nested" || len(p.Properties) == 0 {
		return FieldSet{}
	}
	set := make(FieldSet, len(p.Properties))
	for name := range p.Properties {
		set[name] = struct{}{}
	}
	return set
}

// ParseMappingYAML parses an index mapping from YAML.
func ParseMappingYAML(data []byte) (Mapping, error) {
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mapping{}, fmt.Errorf("parse mapping yaml: %w", err)
	}
	return m, nil
}

// ParseMappingJSON parses an index mapping from JSON, as returned by the
// store's get-mapping API.
func ParseMappingJSON(data []byte) (Mapping, error) {
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return Mapping{}, fmt.Errorf("parse mapping json: %w", err)
	}
	return m, nil
}

// LoadMappingFile reads an index mapping from a YAML or JSON file,
// chosen by extension (.json means JSON, anything else YAML).
func LoadMappingFile(path string) (Mapping, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Mapping{}, fmt.Errorf("read mapping file: %w", err)
	}
	if filepath.Ext(path) == ".json" {
		return ParseMappingJSON(data)
	}
	return ParseMappingYAML(data)
}
