package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SortMode selects how the goal list is ordered after filtering.
type SortMode string

const (
	// SortByName filters only and keeps the server order.
	SortByName     SortMode = "name"
	SortAscending  SortMode = "asc"
	SortDescending SortMode = "desc"
)

// ParseSortMode accepts the short names as well as "ascending"/"descending".
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	}
	return "", &ValidationError{Field: "sort", Message: fmt.Sprintf("unknown sort mode %q", s)}
}

// FilterGoals keeps goals whose title contains query (case-insensitive) and orders them by mode.
// The input slice is never reordered.
func FilterGoals(goals []Goal, query string, mode SortMode) []Goal {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if q == "" || strings.Contains(strings.ToLower(g.Title), q) {
			out = append(out, g)
		}
	}

	switch mode {
	case SortAscending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case SortDescending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	}
	return out
}
