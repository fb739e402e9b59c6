package session

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landmark/internal/anchor"
	"landmark/internal/display"
	"landmark/internal/models"
	"landmark/internal/target"
	"landmark/internal/tracking"
	geo "landmark/models"
)

// gatedResolver places a coordinate at (lon, alt, lat) once opened.
type gatedResolver struct {
	open bool
}

func (g *gatedResolver) Resolve(c geo.Coordinates) (r3.Vector, bool) {
	if !g.open {
		return r3.Vector{}, false
	}
	return r3.Vector{X: c.Lon, Y: c.Alt, Z: c.Lat}, true
}

// place puts a building at bearing degrees and distance meters from the origin
// in the gatedResolver's world.
func place(name string, bearing, distance float64) models.Building {
	r := bearing * math.Pi / 180
	return models.Building{
		Name:        name,
		Description: name + " info",
		Coordinates: geo.Coordinates{Lon: distance * math.Sin(r), Lat: distance * math.Cos(r)},
	}
}

var (
	north = tracking.Pose{Forward: r3.Vector{Z: 1}}
	south = tracking.Pose{Forward: r3.Vector{Z: -1}}
)

func TestNew_RejectsInvalidParams(t *testing.T) {
	_, err := New(nil, &gatedResolver{}, target.Params{}, &display.Panel{})
	assert.ErrorIs(t, err, target.ErrInvalidRadius)
}

func TestSession_Tick(t *testing.T) {
	res := &gatedResolver{}
	panel := &display.Panel{}
	catalog := []models.Building{place("A", 10, 50), place("B", 5, 140)}

	s, err := New(catalog, res, target.DefaultParams(), panel)
	require.NoError(t, err)

	// Nothing is anchored while the resolver is closed.
	assert.Equal(t, display.NoChange, s.Tick(north))
	assert.Equal(t, 0, s.Anchored())
	assert.False(t, panel.Visible())

	res.open = true
	assert.Equal(t, display.Show, s.Tick(north))
	assert.Equal(t, 2, s.Anchored())
	name, _ := panel.Content()
	assert.Equal(t, "B", name)

	assert.Equal(t, display.NoChange, s.Tick(north))
	assert.Equal(t, 1, panel.Writes())

	assert.Equal(t, display.Hide, s.Tick(south))
	assert.Equal(t, display.State{}, s.Displayed())
	name, desc := panel.Content()
	assert.Equal(t, "B", name)
	assert.Equal(t, "B info", desc)
}

func TestSession_DisplayedIsAnchored(t *testing.T) {
	res := &gatedResolver{open: true}
	s, err := New([]models.Building{place("A", 0, 20), place("B", 20, 20)}, res, target.DefaultParams(), &display.Panel{})
	require.NoError(t, err)

	for _, deg := range []float64{0, 10, 20, 90, 180, 15} {
		r := deg * math.Pi / 180
		s.Tick(tracking.Pose{Forward: r3.Vector{X: math.Sin(r), Z: math.Cos(r)}})
		if st := s.Displayed(); st.Visible {
			assert.True(t, s.Registry().Contains(st.Current))
		}
	}
}

func TestSession_EmptyCatalog(t *testing.T) {
	s, err := New(nil, anchor.ResolverFunc(func(geo.Coordinates) (r3.Vector, bool) {
		return r3.Vector{}, true
	}), target.DefaultParams(), &display.Panel{})
	require.NoError(t, err)

	assert.Equal(t, display.NoChange, s.Tick(north))
	assert.False(t, s.Displayed().Visible)
}

func TestAwaitReady(t *testing.T) {
	samples := make(chan tracking.Sample, 4)
	samples <- tracking.Sample{State: tracking.StateNone}
	samples <- tracking.Sample{State: tracking.StateLimited}
	samples <- tracking.Sample{State: tracking.StateLimited}
	samples <- tracking.Sample{State: tracking.StateTracking, Position: [3]float64{1, 2, 3}}

	var statuses []string
	got, err := AwaitReady(context.Background(), samples, time.Second, func(s string) {
		statuses = append(statuses, s)
	})
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 2, 3}, got.Position)
	assert.Equal(t, []string{
		"Earth Tracking State: none",
		"Earth Tracking State: limited",
		"Earth Tracking State: tracking",
		"Tracking established. Creating anchors...",
	}, statuses)
}

func TestAwaitReady_Timeout(t *testing.T) {
	samples := make(chan tracking.Sample, 1)
	samples <- tracking.Sample{State: tracking.StateLimited}

	_, err := AwaitReady(context.Background(), samples, 50*time.Millisecond, nil)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorContains(t, err, "limited")
}

func TestAwaitReady_ZeroTimeoutWaits(t *testing.T) {
	samples := make(chan tracking.Sample)
	go func() {
		samples <- tracking.Sample{State: tracking.StateLimited}
		time.Sleep(100 * time.Millisecond)
		samples <- tracking.Sample{State: tracking.StateTracking}
	}()

	got, err := AwaitReady(context.Background(), samples, 0, nil)
	require.NoError(t, err)
	assert.True(t, got.Tracking())
}

func TestAwaitReady_Closed(t *testing.T) {
	samples := make(chan tracking.Sample)
	close(samples)

	_, err := AwaitReady(context.Background(), samples, 0, nil)
	assert.ErrorIs(t, err, ErrStreamClosed)
}

func TestAwaitReady_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AwaitReady(ctx, make(chan tracking.Sample), time.Second, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

type fixedSource tracking.Pose

func (f fixedSource) CurrentPose() tracking.Pose { return tracking.Pose(f) }

func TestSession_Poll(t *testing.T) {
	panel := &display.Panel{}
	s, err := New([]models.Building{place("A", 0, 30)}, &gatedResolver{open: true}, target.DefaultParams(), panel)
	require.NoError(t, err)

	assert.Equal(t, display.Show, s.Poll(fixedSource(north)))
	assert.Equal(t, display.NoChange, s.Poll(fixedSource(north)))
	assert.Equal(t, 1, panel.Writes())
}
