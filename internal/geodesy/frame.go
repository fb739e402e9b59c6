// Package geodesy resolves WGS84 coordinates into the session's local world
// frame (X east, Y up, Z north, meters).
package geodesy

import (
	"math"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"landmark/models"
)

// WGS84 ellipsoid.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	eccentricity2 = flattening * (2 - flattening)
)

// ECEF converts a geodetic coordinate to Earth-centered Earth-fixed meters.
func ECEF(c models.Coordinates) r3.Vector {
	lat := (s1.Angle(c.Lat) * s1.Degree).Radians()
	lon := (s1.Angle(c.Lon) * s1.Degree).Radians()
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	n := semiMajorAxis / math.Sqrt(1-eccentricity2*sinLat*sinLat)
	return r3.Vector{
		X: (n + c.Alt) * cosLat * math.Cos(lon),
		Y: (n + c.Alt) * cosLat * math.Sin(lon),
		Z: (n*(1-eccentricity2) + c.Alt) * sinLat,
	}
}

// ENU returns the offset of target from origin in the local tangent plane at
// origin, as (east, north, up).
func ENU(origin, target models.Coordinates) (east, north, up float64) {
	d := ECEF(target).Sub(ECEF(origin))
	lat := (s1.Angle(origin.Lat) * s1.Degree).Radians()
	lon := (s1.Angle(origin.Lon) * s1.Degree).Radians()
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	sinLon, cosLon := math.Sin(lon), math.Cos(lon)

	east = -sinLon*d.X + cosLon*d.Y
	north = -sinLat*cosLon*d.X - sinLat*sinLon*d.Y + cosLat*d.Z
	up = cosLat*cosLon*d.X + cosLat*sinLon*d.Y + sinLat*d.Z
	return east, north, up
}

// Frame anchors geodetic coordinates to world space once a geodetic fix of a
// known world position is available. It is safe for concurrent use.
type Frame struct {
	mu       sync.RWMutex
	fixed    bool
	origin   models.Coordinates
	originAt r3.Vector
}

// NewFrame returns an unfixed frame. Resolve reports unresolved until Fix.
func NewFrame() *Frame {
	return &Frame{}
}

// Fix ties origin to the world position at. Only the first call has effect;
// it reports whether this call fixed the frame.
func (f *Frame) Fix(origin models.Coordinates, at r3.Vector) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fixed {
		return false
	}
	f.origin = origin
	f.originAt = at
	f.fixed = true
	return true
}

// Fixed reports whether Fix has been called.
func (f *Frame) Fixed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fixed
}

// Resolve converts c into a world position.
func (f *Frame) Resolve(c models.Coordinates) (r3.Vector, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.fixed {
		return r3.Vector{}, false
	}
	east, north, up := ENU(f.origin, c)
	return f.originAt.Add(r3.Vector{X: east, Y: up, Z: north}), true
}
