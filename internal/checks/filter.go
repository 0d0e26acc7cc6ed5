package checks

import (
	"path/filepath"
	"strings"
)

// Filter filters checks by ID or title pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// ByName filters checks by pattern using wildcard matching.
// Supports patterns like "mobile-*" or "*contrast*"; a bare word matches
// as a substring of the ID or title.
func (f *Filter) ByName(checks []Check, pattern string) []Check {
	if pattern == "" {
		return checks
	}

	var filtered []Check

	for _, check := range checks {
		spec := check.Spec()
		id := spec.ID

		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, id)
		if err == nil && matched {
			filtered = append(filtered, check)
			continue
		}

		// If pattern contains wildcards but filepath.Match didn't match,
		// try a more flexible substring match for patterns like "*image*"
		if strings.Contains(pattern, "*") {
			patternParts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range patternParts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(id, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, check)
				continue
			}
		}

		// If no wildcards, match against ID or lowercased title
		if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
			if strings.Contains(id, pattern) || strings.Contains(strings.ToLower(spec.Title), strings.ToLower(pattern)) {
				filtered = append(filtered, check)
			}
		}
	}

	return filtered
}

// ByCategory keeps only checks in the given category; empty keeps all
func (f *Filter) ByCategory(checks []Check, category string) []Check {
	if category == "" {
		return checks
	}
	var filtered []Check
	for _, check := range checks {
		if strings.EqualFold(check.Spec().Category, category) {
			filtered = append(filtered, check)
		}
	}
	return filtered
}
