package models

import "fmt"

// Coordinates is a WGS84 geodetic position. Altitude is meters above the
// ellipsoid.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
	Alt float64 `json:"alt" yaml:"alt"`
}

// IsZero reports whether no position was ever set.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0 && c.Alt == 0
}

// Validate checks latitude and longitude ranges.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lon)
	}
	return nil
}

type Location struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Source      string      `json:"source,omitempty"` // e.g., "OpenStreetMap"
}
