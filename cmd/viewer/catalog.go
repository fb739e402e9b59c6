package main

import (
	"context"
	"fmt"
	"landmark/internal/catalog"
	"landmark/internal/config"
	"landmark/internal/keys"
	"landmark/internal/models"
	"landmark/internal/storage"
	"log"
)

// loadCatalog reads the building list from the configured source.
func loadCatalog(ctx context.Context, cfg config.Catalog) ([]models.Building, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	switch cfg.Source {
	case config.SourceFile:
		c, err = catalog.LoadFile(cfg.Path)
	case config.SourceS3:
		var s3Service *storage.S3Service
		s3Service, err = storage.NewS3Service(keys.Building)
		if err != nil {
			return nil, err
		}
		c, err = catalog.LoadS3(ctx, s3Service, cfg.Bucket, cfg.Prefix)
	case config.SourcePostgres:
		conn, cerr := catalog.Connect(ctx, cfg.DatabaseURL)
		if cerr != nil {
			return nil, cerr
		}
		defer conn.Close(ctx)
		c, err = catalog.LoadPostgres(ctx, conn)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d buildings from %s catalog", c.Len(), cfg.Source)
	return c.Buildings(), nil
}
