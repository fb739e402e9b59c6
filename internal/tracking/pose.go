// Package tracking describes the viewer pose handed to the selector each tick
// and the wire form in which pose samples arrive from the tracking backend.
package tracking

import (
	"github.com/golang/geo/r3"
)

// Up is the world up axis. World space is X east, Y up, Z north.
var Up = r3.Vector{X: 0, Y: 1, Z: 0}

// Pose is the viewer position and forward direction in world space.
type Pose struct {
	Position r3.Vector
	Forward  r3.Vector
}

// Pitch returns the tilt of the forward vector away from the horizon in
// degrees. Zero is level, positive looks up, negative looks down.
func (p Pose) Pitch() float64 {
	return 90 - p.Forward.Angle(Up).Degrees()
}

// Horizontal returns v with its vertical component removed.
func Horizontal(v r3.Vector) r3.Vector {
	return r3.Vector{X: v.X, Y: 0, Z: v.Z}
}

// Source supplies the current pose. It is only consulted while the tracking
// backend reports StateTracking.
type Source interface {
	CurrentPose() Pose
}
