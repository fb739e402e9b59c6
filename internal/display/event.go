package display

import (
	"encoding/json"
	"fmt"
	"time"

	"landmark/internal/models"
)

// Event is the wire form of a show or hide intent.
type Event struct {
	Type      string           `json:"type"`
	Building  *models.Building `json:"building,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

func NewShowEvent(b models.Building, at time.Time) Event {
	return Event{Type: Show.String(), Building: &b, Timestamp: at}
}

func NewHideEvent(at time.Time) Event {
	return Event{Type: Hide.String(), Timestamp: at}
}

func (e Event) Marshal() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal display event: %w", err)
	}
	return data, nil
}
