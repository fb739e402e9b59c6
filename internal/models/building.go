package models

import (
	"errors"
	"fmt"

	geo "landmark/models"
)

var ErrEmptyName = errors.New("building name is empty")

// Building is one point of interest shown in the info panel. Name is the
// identifier and must be unique within a catalog.
type Building struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Coordinates geo.Coordinates `json:"coordinates" yaml:"coordinates"`
}

// Validate checks the fields a catalog entry needs before it can be anchored.
func (b Building) Validate() error {
	if b.Name == "" {
		return ErrEmptyName
	}
	if err := b.Coordinates.Validate(); err != nil {
		return fmt.Errorf("building %q: %w", b.Name, err)
	}
	return nil
}

// StoredBuilding is a building as it is persisted in object storage.
// Position is its index in the catalog it was published from; object keys
// carry no order.
type StoredBuilding struct {
	Building
	Position int `json:"position"`
}
