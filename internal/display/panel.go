package display

import (
	"sync"

	"landmark/internal/models"
)

// Panel is an in-memory info surface. Hiding only toggles visibility; the last
// shown text stays in place.
type Panel struct {
	mu          sync.Mutex
	name        string
	description string
	visible     bool
	writes      int
}

func (p *Panel) OnNoChange() {}

func (p *Panel) OnShow(b models.Building) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = b.Name
	p.description = b.Description
	p.visible = true
	p.writes++
}

func (p *Panel) OnHide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

// Content returns the text currently held by the panel.
func (p *Panel) Content() (name, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name, p.description
}

func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Writes counts how many times content was written.
func (p *Panel) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}
