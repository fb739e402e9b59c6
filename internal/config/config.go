// Package config reads the viewer configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"landmark/internal/target"
)

// Catalog sources.
const (
	SourceFile     = "file"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

// Detection holds the selector thresholds.
type Detection struct {
	Radius             float64 `env:"LANDMARK_DETECTION_RADIUS"      envDefault:"160"`
	Angle              float64 `env:"LANDMARK_DETECTION_ANGLE"       envDefault:"60"`
	VerticalAngleLimit float64 `env:"LANDMARK_VERTICAL_ANGLE_LIMIT"  envDefault:"60"`
}

// Params converts the thresholds into selector parameters.
func (d Detection) Params() target.Params {
	return target.Params{
		DetectionRadius:    d.Radius,
		DetectionAngle:     d.Angle,
		VerticalAngleLimit: d.VerticalAngleLimit,
	}
}

type Catalog struct {
	Source      string `env:"LANDMARK_CATALOG_SOURCE" envDefault:"file"`
	Path        string `env:"LANDMARK_CATALOG_PATH"   envDefault:"buildings.yaml"`
	Bucket      string `env:"LANDMARK_CATALOG_BUCKET"`
	Prefix      string `env:"LANDMARK_CATALOG_PREFIX" envDefault:"buildings/"`
	DatabaseURL string `env:"DATABASE_URL"`
}

type Kafka struct {
	Broker       string `env:"KAFKA_BROKER"        envDefault:"localhost:9092"`
	PoseTopic    string `env:"KAFKA_POSE_TOPIC"    envDefault:"device-poses"`
	GroupID      string `env:"KAFKA_GROUP_ID"      envDefault:"landmark-viewer"`
	DisplayTopic string `env:"KAFKA_DISPLAY_TOPIC" envDefault:"display-events"`
}

// Config is the full viewer configuration.
type Config struct {
	Detection    Detection
	Catalog      Catalog
	Kafka        Kafka
	ReadyTimeout time.Duration `env:"LANDMARK_READY_TIMEOUT" envDefault:"0s"`
}

// Load parses the environment and validates the result. Invalid detection
// parameters are rejected here so the tick loop never sees them.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Detection.Params().Validate(); err != nil {
		return fmt.Errorf("detection: %w", err)
	}
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog: LANDMARK_CATALOG_PATH is required for source %q", c.Catalog.Source)
		}
	case SourceS3:
		if c.Catalog.Bucket == "" {
			return fmt.Errorf("catalog: LANDMARK_CATALOG_BUCKET is required for source %q", c.Catalog.Source)
		}
	case SourcePostgres:
		if c.Catalog.DatabaseURL == "" {
			return fmt.Errorf("catalog: DATABASE_URL is required for source %q", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("catalog: unknown source %q", c.Catalog.Source)
	}
	if c.ReadyTimeout < 0 {
		return fmt.Errorf("ready timeout must not be negative, got %s", c.ReadyTimeout)
	}
	return nil
}
