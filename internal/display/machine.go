// Package display reconciles the selected building against what the info
// panel currently shows and emits at most one intent per tick.
package display

import (
	"sync"

	"landmark/internal/models"
)

// Sink receives the intents produced by Machine.
type Sink interface {
	OnNoChange()
	OnShow(b models.Building)
	OnHide()
}

// Transition is the intent emitted for one tick.
type Transition int

const (
	NoChange Transition = iota
	Show
	Hide
)

func (t Transition) String() string {
	switch t {
	case Show:
		return "show"
	case Hide:
		return "hide"
	default:
		return "no-change"
	}
}

// State is what the panel displays. Current holds only the identifier of the
// shown building.
type State struct {
	Current string
	Visible bool
}

// Next computes the transition for candidate without touching any panel.
// A nil candidate means nothing is in view.
func Next(s State, candidate *models.Building) (State, Transition) {
	switch {
	case candidate == nil && !s.Visible:
		return s, NoChange
	case candidate == nil:
		return State{}, Hide
	case s.Visible && s.Current == candidate.Name:
		return s, NoChange
	default:
		return State{Current: candidate.Name, Visible: true}, Show
	}
}

// Machine holds the display state for a session. Step is serialized so ticks
// from several goroutines cannot interleave.
type Machine struct {
	mu    sync.Mutex
	state State
}

// NewMachine returns a machine in the hidden state.
func NewMachine() *Machine {
	return &Machine{}
}

// Step applies candidate, dispatches the resulting intent to sink and returns
// it.
func (m *Machine) Step(candidate *models.Building, sink Sink) Transition {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, tr := Next(m.state, candidate)
	m.state = next
	switch tr {
	case Show:
		sink.OnShow(*candidate)
	case Hide:
		sink.OnHide()
	default:
		sink.OnNoChange()
	}
	return tr
}

// State returns the current display state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
