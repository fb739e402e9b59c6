// Package target picks the single building the viewer is looking at.
package target

import (
	"math"

	"landmark/internal/anchor"
	"landmark/internal/models"
	"landmark/internal/tracking"
)

// Anchors is the read side of anchor.Registry.
type Anchors interface {
	Entries() []anchor.Entry
}

// Match is the selected building with the measurements that qualified it.
type Match struct {
	Building models.Building
	// Distance is the 3D distance from the viewer in meters.
	Distance float64
	// Bearing is the horizontal angle off the forward direction in degrees.
	Bearing float64
}

// Select returns the anchored building closest to straight ahead that lies
// within p's radius, field of view and pitch gate. Boundaries are inclusive.
// Equal bearings keep the earlier anchor in registry order. Select has no side
// effects; p is assumed to have passed Validate.
func Select(pose tracking.Pose, anchors Anchors, p Params) (Match, bool) {
	if math.Abs(pose.Pitch()) > p.VerticalAngleLimit/2 {
		return Match{}, false
	}

	halfAngle := p.DetectionAngle / 2
	forward := tracking.Horizontal(pose.Forward)

	var best Match
	found := false
	for _, e := range anchors.Entries() {
		distance := pose.Position.Distance(e.Position)
		if distance > p.DetectionRadius {
			continue
		}

		toAnchor := tracking.Horizontal(e.Position.Sub(pose.Position))
		bearing := forward.Angle(toAnchor).Degrees()
		if bearing > halfAngle {
			continue
		}

		if !found || bearing < best.Bearing {
			best = Match{Building: e.Building, Distance: distance, Bearing: bearing}
			found = true
		}
	}
	return best, found
}
