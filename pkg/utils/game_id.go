package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateGameID creates a human-readable game ID.
// Format: {commanderSlug}-{8charHexUUID}
//
// Example:
//   - Input: commander="Jean-Luc Picard"
//   - Output: "jean-luc-picard-a3f8e2b1"
//
// A commander name with no letters or digits yields "commander-{8charHexUUID}".
func GenerateGameID(commander string) string {
	return slugify(commander) + "-" + generateShortUUID()
}

// slugify lowercases a name and joins its letter/digit runs with hyphens
//   - "Jameson" -> "jameson"
//   - "  Zaphod  Beeblebrox " -> "zaphod-beeblebrox"
//   - "R2-D2" -> "r2-d2"
//   - "!!!" -> "commander"
func slugify(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "commander"
	}
	return strings.Join(words, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	// Remove hyphens and take first 8 characters
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
