package tracking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang/geo/r3"

	"landmark/models"
)

// State mirrors the tracking backend status.
type State string

const (
	StateNone     State = "none"
	StateLimited  State = "limited"
	StateTracking State = "tracking"
	StatePaused   State = "paused"
)

// Sample is one pose reading as published by the tracking backend.
type Sample struct {
	State    State      `json:"state"`
	Position [3]float64 `json:"position"`
	Forward  [3]float64 `json:"forward"`
	// Geo is the geodetic fix of Position, when the backend has one.
	Geo       *models.Coordinates `json:"geo,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// Tracking reports whether the sample may drive a tick.
func (s Sample) Tracking() bool {
	return s.State == StateTracking
}

// Pose converts the wire arrays into vectors.
func (s Sample) Pose() Pose {
	return Pose{
		Position: r3.Vector{X: s.Position[0], Y: s.Position[1], Z: s.Position[2]},
		Forward:  r3.Vector{X: s.Forward[0], Y: s.Forward[1], Z: s.Forward[2]},
	}
}

// DecodeSample parses a JSON encoded Sample.
func DecodeSample(data []byte) (Sample, error) {
	var s Sample
	if err := json.Unmarshal(data, &s); err != nil {
		return Sample{}, fmt.Errorf("decode pose sample: %w", err)
	}
	switch s.State {
	case StateNone, StateLimited, StateTracking, StatePaused:
	default:
		return Sample{}, fmt.Errorf("decode pose sample: unknown tracking state %q", s.State)
	}
	return s, nil
}
