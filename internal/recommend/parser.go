// Package recommend turns raw assistant reply text into structured
// recommendations: it extracts inline entity reference markers, resolves them
// against a catalog snapshot, and normalizes grounding metadata into
// citations. Everything here is pure and best-effort; malformed input is
// skipped, never an error.
package recommend

import (
	"regexp"
)

// markerRe matches an entity reference marker: the token "ID:" (optionally
// preceded by whitespace) inside square brackets, followed by an identifier
// of word characters and hyphens. Anything else inside brackets simply does
// not match.
var markerRe = regexp.MustCompile(`\[\s*ID:\s*([\w-]+)\s*\]`)

// ExtractReferences returns the identifiers embedded in text, in first-seen
// order, duplicates removed. No markers yields an empty result, not an error.
func ExtractReferences(text string) []string {
	matches := markerRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		id := m[1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// StripMarkers removes all entity reference markers from text, leaving the
// prose for display. Malformed markers are left untouched.
func StripMarkers(text string) string {
	return markerRe.ReplaceAllString(text, "")
}
