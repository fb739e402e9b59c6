package enrich

import (
	"context"
	"fmt"
	"strings"

	"landmark/internal/models"
	geo "landmark/models"
)

// Geocoder resolves a place name to a location.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*geo.Location, error)
}

// TrimFields strips surrounding whitespace from name and description.
func TrimFields(_ context.Context, b *models.Building) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)
	return nil
}

// GeocodeMissing fills in latitude and longitude for buildings that have no
// coordinates. The altitude, if any was given, is kept.
func GeocodeMissing(g Geocoder, region string) Step[models.Building] {
	return func(ctx context.Context, b *models.Building) error {
		if b.Coordinates.Lat != 0 || b.Coordinates.Lon != 0 {
			return nil
		}
		query := b.Name
		if region != "" {
			query = b.Name + ", " + region
		}
		loc, err := g.Geocode(ctx, query)
		if err != nil {
			return fmt.Errorf("geocode %q: %w", b.Name, err)
		}
		b.Coordinates.Lat = loc.Coordinates.Lat
		b.Coordinates.Lon = loc.Coordinates.Lon
		return nil
	}
}

// BuildingPipeline trims fields, then fills missing coordinates and
// descriptions. The lookups touch disjoint fields and share a stage.
func BuildingPipeline(g Geocoder, s Summarizer, region string) *Pipeline[models.Building] {
	return NewPipeline(
		NewStage(TrimFields),
		NewStage(GeocodeMissing(g, region), DescribeMissing(s)),
	)
}

// Summarizer returns a short description for a title.
type Summarizer interface {
	Summary(ctx context.Context, title string) (string, error)
}

// DescribeMissing fills an empty description from s.
func DescribeMissing(s Summarizer) Step[models.Building] {
	return func(ctx context.Context, b *models.Building) error {
		if b.Description != "" {
			return nil
		}
		summary, err := s.Summary(ctx, b.Name)
		if err != nil {
			return fmt.Errorf("describe %q: %w", b.Name, err)
		}
		b.Description = summary
		return nil
	}
}
