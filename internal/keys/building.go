package keys

import (
	"fmt"
	"landmark/internal/models"
	"strings"
)

// Prefix is where building objects live inside the catalog bucket.
const Prefix = "buildings/"

// sanitizeKey replaces spaces with hyphens and lowercases the string.
func sanitizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}

// Building returns the canonical S3 key for a Building object.
func Building(b models.Building) string {
	return fmt.Sprintf("%s%s.json", Prefix, sanitizeKey(b.Name))
}
