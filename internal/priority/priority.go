// Package priority classifies issues and pull requests into priority tiers
// based on their labels.
package priority

import "strings"

// Tier is a priority classification derived from labels. Lower values sort
// first; the tier affects ordering and display only, never inclusion.
type Tier int

const (
	P0 Tier = iota
	P1
	P2
	None
)

// String returns the display form of the tier. None renders empty.
func (t Tier) String() string {
	switch t {
	case P0:
		return "P0"
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return ""
	}
}

// FromLabels maps a label set to a tier. Levels are checked in P0, P1, P2
// order, so an item carrying both a p0 and a p1 label classifies as P0.
// Matching is case-insensitive with two deliberately different rules: a bare
// label must equal the level exactly ("p0"), while a namespaced label
// matches by substring ("priority:p0" anywhere in the name). A label like
// "not-p0" therefore matches neither rule.
func FromLabels(labels []string) Tier {
	lower := make([]string, len(labels))
	for i, l := range labels {
		lower[i] = strings.ToLower(l)
	}
	for _, level := range []struct {
		name string
		tier Tier
	}{
		{"p0", P0},
		{"p1", P1},
		{"p2", P2},
	} {
		if matchesLevel(lower, level.name) {
			return level.tier
		}
	}
	return None
}

func matchesLevel(lower []string, level string) bool {
	for _, l := range lower {
		if l == level || strings.Contains(l, "priority:"+level) {
			return true
		}
	}
	return false
}
