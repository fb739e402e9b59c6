package target

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRadius        = errors.New("detection radius must be positive")
	ErrInvalidAngle         = errors.New("detection angle must be in (0, 360]")
	ErrInvalidVerticalLimit = errors.New("vertical angle limit must be in (0, 180)")
)

// Params bounds what counts as a building in view.
type Params struct {
	// DetectionRadius is the maximum straight-line distance in meters.
	DetectionRadius float64
	// DetectionAngle is the full horizontal field of view in degrees.
	DetectionAngle float64
	// VerticalAngleLimit is the full pitch range in degrees, centered on the
	// horizon, within which detection is active. It stays below 180 so that
	// looking straight up or down never reaches the bearing computation.
	VerticalAngleLimit float64
}

func DefaultParams() Params {
	return Params{
		DetectionRadius:    160,
		DetectionAngle:     60,
		VerticalAngleLimit: 60,
	}
}

// Validate rejects parameters that would make selection meaningless. It is
// meant to run once at configuration time, not per tick.
func (p Params) Validate() error {
	if !(p.DetectionRadius > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, p.DetectionRadius)
	}
	if !(p.DetectionAngle > 0 && p.DetectionAngle <= 360) {
		return fmt.Errorf("%w: got %v", ErrInvalidAngle, p.DetectionAngle)
	}
	if !(p.VerticalAngleLimit > 0 && p.VerticalAngleLimit < 180) {
		return fmt.Errorf("%w: got %v", ErrInvalidVerticalLimit, p.VerticalAngleLimit)
	}
	return nil
}
