package catalog

import (
	"context"
	"fmt"
	"log"
	"slices"

	"landmark/internal/models"
)

// ObjectStore is the subset of storage.S3Service the catalog reads from.
type ObjectStore interface {
	ListKeys(ctx context.Context, bucketName, prefix string) ([]string, error)
	GetBuildingObject(ctx context.Context, bucketName, objectKey string) (*models.StoredBuilding, error)
}

// LoadS3 reads every building object under prefix and restores the order
// they were published in. Objects with equal positions keep the order the
// store lists them in.
func LoadS3(ctx context.Context, store ObjectStore, bucketName, prefix string) (*Catalog, error) {
	keys, err := store.ListKeys(ctx, bucketName, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog objects: %w", err)
	}

	stored := make([]models.StoredBuilding, 0, len(keys))
	for _, key := range keys {
		b, err := store.GetBuildingObject(ctx, bucketName, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog object %q: %w", key, err)
		}
		stored = append(stored, *b)
	}
	slices.SortStableFunc(stored, func(a, b models.StoredBuilding) int {
		return a.Position - b.Position
	})

	buildings := make([]models.Building, len(stored))
	for i, b := range stored {
		buildings[i] = b.Building
	}
	log.Printf("Loaded %d buildings from bucket '%s' prefix '%s'", len(buildings), bucketName, prefix)
	return New(buildings)
}
