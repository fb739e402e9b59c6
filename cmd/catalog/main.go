package main

import (
	"context"
	"flag"
	"fmt"
	"landmark/internal/catalog"
	"landmark/internal/enrich"
	"landmark/internal/env"
	"landmark/internal/keys"
	"landmark/internal/models"
	"landmark/internal/storage"
	"landmark/pkg/graceful"
	"landmark/pkg/location"
	"landmark/pkg/wikipedia"
	"log"
	"net/http"
	"time"
)

func main() {
	path := flag.String("file", "buildings.yaml", "catalog file to publish (.yaml, .yml or .json)")
	region := flag.String("region", "", "appended to building names when geocoding, e.g. \"Seoul, South Korea\"")
	overwrite := flag.Bool("overwrite", false, "replace objects that already exist in the bucket")
	flag.Parse()

	env.LoadEnv()
	bucketName := env.MustGetEnv("LANDMARK_CATALOG_BUCKET")

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()
	start := time.Now()

	raw, err := catalog.ReadFile(*path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Enriching %d buildings from %s...\n", len(raw), *path)

	httpClient := &http.Client{Timeout: 10 * time.Second}
	geocoder := location.NewClient(httpClient, "")
	summarizer := wikipedia.NewClient(httpClient, "")
	enriched, err := enrichAll(ctx, enrich.BuildingPipeline(geocoder, summarizer, *region), raw)
	if err != nil {
		log.Fatal(err)
	}
	for _, b := range enriched {
		if b.Coordinates.IsZero() {
			log.Printf("Building '%s' still has no coordinates after enrichment", b.Name)
		}
	}
	c, err := catalog.New(enriched)
	if err != nil {
		log.Fatalf("Catalog is invalid after enrichment: %v", err)
	}

	s3Service, err := storage.NewS3Service(keys.Building)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := s3Service.CreateBucket(ctx, bucketName, ""); err != nil {
		log.Fatal(err)
	}

	buildingCh := make(chan models.Building)
	go func() {
		defer close(buildingCh)
		for _, b := range c.Buildings() {
			buildingCh <- b
		}
	}()
	written := s3Service.StoreFromChannel(ctx, bucketName, buildingCh, *overwrite)

	fmt.Printf("\nPublished %d of %d buildings, took %s\n", written, c.Len(), time.Since(start))
}

// enrichAll runs every building through p and returns them in input order.
func enrichAll(ctx context.Context, p *enrich.Pipeline[models.Building], buildings []models.Building) ([]models.Building, error) {
	in := make(chan *models.Building)
	go func() {
		defer close(in)
		for i := range buildings {
			b := buildings[i]
			select {
			case in <- &b:
			case <-ctx.Done():
				return
			}
		}
	}()

	out := make([]models.Building, 0, len(buildings))
	for b := range p.Process(ctx, in) {
		out = append(out, *b)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("enrichment interrupted: %w", err)
	}
	return out, nil
}
