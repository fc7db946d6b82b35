package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.yaml.in/yaml/v3"
)

// LoadPreset reads, validates and parses a preset file. Files ending in
// .json or .jsonc may contain comments and trailing commas; anything else
// is read as YAML.
func LoadPreset(path string) (*Preset, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}
	return ParsePreset(data)
}

// ParsePreset validates raw YAML (or plain JSON) bytes against the preset
// schema and decodes them.
func ParsePreset(data []byte) (*Preset, error) {
	result, err := Validate(SchemaPreset, data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Schema: SchemaPreset, Issues: result.Issues}
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset: %w", err)
	}
	if p.Version != "" {
		v, err := NormalizeVersion(p.Version)
		if err != nil {
			return nil, err
		}
		p.Version = v
	}
	return &p, nil
}

// ParsePackageJSON decodes a generated package.json.
func ParsePackageJSON(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
