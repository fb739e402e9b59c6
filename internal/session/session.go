// Package session runs the per-tick loop: retry pending anchors, select the
// building in view, and reconcile the info panel.
package session

import (
	"fmt"
	"log"
	"sync"

	"landmark/internal/anchor"
	"landmark/internal/display"
	"landmark/internal/models"
	"landmark/internal/target"
	"landmark/internal/tracking"
)

// Session owns the anchor registry and display state of one viewing session.
// Tick may be called from several goroutines; calls are serialized.
type Session struct {
	mu        sync.Mutex
	buildings []models.Building
	registry  *anchor.Registry
	params    target.Params
	machine   *display.Machine
	sink      display.Sink
}

// New validates params and returns a session in the hidden state. buildings
// is read-only to the session.
func New(buildings []models.Building, resolver anchor.Resolver, params target.Params, sink display.Sink) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detection parameters: %w", err)
	}
	return &Session{
		buildings: buildings,
		registry:  anchor.NewRegistry(resolver),
		params:    params,
		machine:   display.NewMachine(),
		sink:      sink,
	}, nil
}

// Tick evaluates one pose and returns the transition it caused.
func (s *Session) Tick(pose tracking.Pose) display.Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.Len() < len(s.buildings) {
		if n := s.registry.RegisterAll(s.buildings); n > 0 {
			log.Printf("Anchored %d buildings (%d/%d)", n, s.registry.Len(), len(s.buildings))
		}
	}

	var candidate *models.Building
	if m, ok := target.Select(pose, s.registry, s.params); ok {
		candidate = &m.Building
	}
	tr := s.machine.Step(candidate, s.sink)
	switch tr {
	case display.Show:
		log.Printf("Showing building '%s'", candidate.Name)
	case display.Hide:
		log.Println("Hiding building panel")
	}
	return tr
}

// Poll samples src and ticks with the result.
func (s *Session) Poll(src tracking.Source) display.Transition {
	return s.Tick(src.CurrentPose())
}

// Anchored reports how many catalog buildings have an anchor.
func (s *Session) Anchored() int {
	return s.registry.Len()
}

// Displayed returns the current display state.
func (s *Session) Displayed() display.State {
	return s.machine.State()
}

// Registry exposes the anchors for inspection.
func (s *Session) Registry() *anchor.Registry {
	return s.registry
}
