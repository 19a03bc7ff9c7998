// Package prefs holds the preference-save contract: categories are
// normalized before writing and a save must pick at least MinPicks
// options from the configured allow-list.
package prefs

import "strings"

// MinPicks is the minimum number of categories a profile must select.
const MinPicks = 3

// Normalize trims whitespace, drops blanks and de-duplicates while
// preserving first-seen order.
func Normalize(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Validate reports whether the picks are enough and all come from the
// allow-list. Call after Normalize.
func Validate(categories, allowed []string) bool {
	if len(categories) < MinPicks {
		return false
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		allowedSet[c] = struct{}{}
	}
	for _, c := range categories {
		if _, ok := allowedSet[c]; !ok {
			return false
		}
	}
	return true
}
