// Package digest filters fetched items against the configured label policy
// and orders the survivors by priority tier and recency.
package digest

import (
	"sort"
	"strings"
	"time"

	"github.com/Shan533/Github-Issue-Digest-Bot/internal/priority"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/search"
)

// Policy holds the inclusion and exclusion rules. All label and assignee
// matching is case-insensitive on both sides.
type Policy struct {
	// PriorityLabels, when non-empty, requires an item to carry at least
	// one of these labels.
	PriorityLabels []string
	// ExcludeLabels drops any item carrying one of these labels.
	ExcludeLabels []string
	// ExcludeAssignees drops any item assigned to one of these handles.
	ExcludeAssignees []string
}

// Keep reports whether an item survives the policy. The checks short-circuit
// in a fixed order: required priority labels first, then excluded labels,
// then excluded assignees.
func Keep(it search.Item, p Policy) bool {
	labels := lowerSet(it.LabelNames())

	if len(p.PriorityLabels) > 0 && !intersects(labels, lowerSet(p.PriorityLabels)) {
		return false
	}
	if intersects(labels, lowerSet(p.ExcludeLabels)) {
		return false
	}
	if intersects(lowerSet(it.AssigneeLogins()), lowerSet(p.ExcludeAssignees)) {
		return false
	}
	return true
}

// Rank drops items rejected by the policy and sorts the rest by tier
// (P0 first), then updated time, newest first. The sort is stable, so items
// with equal tier and timestamp keep their fetch order. An unparsable
// updated_at is the zero time and sorts last within its tier.
func Rank(items []search.Item, p Policy) []search.Item {
	var kept []search.Item
	for _, it := range items {
		if Keep(it, p) {
			kept = append(kept, it)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		ti := priority.FromLabels(kept[i].LabelNames())
		tj := priority.FromLabels(kept[j].LabelNames())
		if ti != tj {
			return ti < tj
		}
		return kept[i].UpdatedTime().After(kept[j].UpdatedTime())
	})
	return kept
}

// Digest is the assembled, ordered result set handed to the renderers.
type Digest struct {
	GeneratedAt time.Time
	Items       []search.Item
}

// Build runs the policy filter and ranking over the fetched items.
func Build(items []search.Item, p Policy, now time.Time) Digest {
	return Digest{
		GeneratedAt: now.UTC(),
		Items:       Rank(items, p),
	}
}

// PullRequests returns the ranked pull requests, order preserved.
func (d Digest) PullRequests() []search.Item {
	return d.byKind(true)
}

// Issues returns the ranked issues, order preserved.
func (d Digest) Issues() []search.Item {
	return d.byKind(false)
}

func (d Digest) byKind(pr bool) []search.Item {
	var out []search.Item
	for _, it := range d.Items {
		if it.IsPullRequest() == pr {
			out = append(out, it)
		}
	}
	return out
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = true
	}
	return set
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}
