package keys

import (
	"landmark/internal/models"
	"testing"
)

func TestBuilding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces and case", in: "N Seoul Tower", want: "buildings/n-seoul-tower.json"},
		{name: "surrounding whitespace", in: "  Gyeongbokgung ", want: "buildings/gyeongbokgung.json"},
		{name: "already clean", in: "lotte-world-tower", want: "buildings/lotte-world-tower.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Building(models.Building{Name: tt.in}); got != tt.want {
				t.Errorf("Building(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
