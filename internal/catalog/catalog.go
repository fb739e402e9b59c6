// Package catalog loads the ordered list of buildings a session can show.
// Sources are YAML or JSON files, objects in an S3 bucket, or a Postgres
// table. Whatever the source, the result is validated before use.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"landmark/internal/models"
)

var ErrDuplicateName = errors.New("duplicate building name")

// Catalog is an ordered, validated list of buildings.
type Catalog struct {
	buildings []models.Building
}

// New validates buildings and wraps them. Names must be unique.
func New(buildings []models.Building) (*Catalog, error) {
	seen := make(map[string]struct{}, len(buildings))
	for i, b := range buildings {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, ok := seen[b.Name]; ok {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrDuplicateName, b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return &Catalog{buildings: buildings}, nil
}

// Buildings returns a copy of the list in catalog order.
func (c *Catalog) Buildings() []models.Building {
	out := make([]models.Building, len(c.buildings))
	copy(out, c.buildings)
	return out
}

func (c *Catalog) Len() int {
	return len(c.buildings)
}

// file is the on-disk layout shared by YAML and JSON catalogs.
type file struct {
	Buildings []models.Building `json:"buildings" yaml:"buildings"`
}

// Decode parses raw catalog data. format is "json" or "yaml".
func Decode(data []byte, format string) ([]models.Building, error) {
	var f file
	switch format {
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode JSON catalog: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode YAML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return f.Buildings, nil
}

// ReadFile reads an unvalidated building list from a .json, .yaml or .yml
// file.
func ReadFile(path string) ([]models.Building, error) {
	cleanPath := filepath.Clean(path)
	var format string
	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".json":
		format = "json"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("catalog file must be .json, .yaml or .yml, got %q", filepath.Ext(cleanPath))
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Decode(data, format)
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	buildings, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(buildings)
}
