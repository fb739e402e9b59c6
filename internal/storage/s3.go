package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"landmark/internal/keys"
	"landmark/internal/models"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// KeyFunc maps a building to its object key.
type KeyFunc func(b models.Building) string

// S3Service is a client for S3-compatible storage holding the building catalog.
type S3Service struct {
	client *minio.Client
	key    KeyFunc
	count  atomic.Int64
}

// NewS3Service initializes and returns a new S3 storage service.
// It connects to the MinIO server using credentials from environment variables.
func NewS3Service(key KeyFunc) (*S3Service, error) {
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if minioEndpoint == "" || minioAccessKey == "" || minioSecretKey == "" {
		return nil, fmt.Errorf("missing one or more required environment variables: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if key == nil {
		key = keys.Building
	}

	log.Println("Successfully connected to MinIO endpoint:", minioEndpoint)
	return &S3Service{client: minioClient, key: key}, nil
}

func (s *S3Service) CreateBucket(ctx context.Context, bucketName string, location string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// StoreFromChannel reads buildings from a channel and stores each one in the
// bucket, recording the order they arrived in as their catalog position.
// Objects that already exist are overwritten only when overwrite is set. It
// returns the number of buildings written.
func (s *S3Service) StoreFromChannel(ctx context.Context, bucketName string, buildings <-chan models.Building, overwrite bool) int64 {
	var wg sync.WaitGroup
	s.count.Store(0)

	position := 0
	for building := range buildings {
		wg.Add(1)
		go func(b models.StoredBuilding) {
			defer wg.Done()
			written, err := s.storeSingleBuilding(ctx, bucketName, b, overwrite)
			if err != nil {
				log.Printf("Error storing building '%s': %v", b.Name, err)
				return
			}
			if written {
				s.count.Add(1)
			}
		}(models.StoredBuilding{Building: building, Position: position})
		position++
	}

	wg.Wait()
	n := s.count.Load()
	log.Printf("Finished storing buildings from the channel. Count %d", n)
	return n
}

// storeSingleBuilding writes one building object and reports whether it wrote.
func (s *S3Service) storeSingleBuilding(ctx context.Context, bucketName string, building models.StoredBuilding, overwrite bool) (bool, error) {
	objectKey := s.key(building.Building)

	if !overwrite {
		_, err := s.client.StatObject(ctx, bucketName, objectKey, minio.StatObjectOptions{})
		if err == nil {
			log.Printf("Building file for '%s' already exists in bucket '%s'. Ignoring write operation.", building.Name, bucketName)
			return false, nil
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return false, fmt.Errorf("failed to check for existing object: %w", err)
		}
	}

	data, err := json.Marshal(building)
	if err != nil {
		return false, fmt.Errorf("failed to marshal building to JSON: %w", err)
	}

	_, err = s.client.PutObject(
		ctx,
		bucketName,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return false, fmt.Errorf("failed to store object in S3: %w", err)
	}

	log.Printf("Successfully stored building '%s' in bucket '%s' with key '%s'", building.Name, bucketName, objectKey)
	return true, nil
}

// ListKeys returns the keys of all JSON objects under prefix, sorted.
func (s *S3Service) ListKeys(ctx context.Context, bucketName, prefix string) ([]string, error) {
	var out []string
	for obj := range s.client.ListObjects(ctx, bucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			out = append(out, obj.Key)
		}
	}
	sort.Strings(out)
	return out, nil
}

// GetBuildingObject reads one stored building with its catalog position.
func (s *S3Service) GetBuildingObject(ctx context.Context, bucketName string, objectKey string) (*models.StoredBuilding, error) {
	object, err := s.client.GetObject(ctx, bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer object.Close()

	var building models.StoredBuilding
	if err := json.NewDecoder(object).Decode(&building); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from stream: %w", err)
	}
	return &building, nil
}
