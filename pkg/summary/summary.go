// Package summary derives the filterable, sortable view across a
// project's entries. Everything here is pure: inputs are never mutated.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/entry"
)

// Field selects what the view sorts on.
type Field string

const (
	SortRisk     Field = "risk_factor"
	SortCategory Field = "category"
	SortUpdated  Field = "updated_at"
)

// ParseField resolves user input to a sort field.
func ParseField(raw string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "risk", "risk_factor":
		return SortRisk, nil
	case "category", "cat":
		return SortCategory, nil
	case "updated", "updated_at", "recency":
		return SortUpdated, nil
	}
	return "", fmt.Errorf("summary: unknown sort field %q", raw)
}

// SortState tracks the active sort field and direction across repeated
// requests.
type SortState struct {
	Field     Field
	Ascending bool
}

// Toggle applies the direction contract: choosing the active field again
// flips direction, choosing a different field resets to ascending.
func (s *SortState) Toggle(f Field) {
	if s.Field == f {
		s.Ascending = !s.Ascending
		return
	}
	s.Field = f
	s.Ascending = true
}

// Options parameterize a view.
type Options struct {
	// Categories is the membership filter. An empty selection yields an
	// empty view.
	Categories []category.Category
	// TagFilter is the raw comma-separated tag input. When it yields any
	// tags, an entry is kept if at least one filter tag matches at least
	// one of its own tags, case-insensitively.
	TagFilter string
	Sort      Field
	Ascending bool
}

// View filters and stably sorts entries into a new slice. Ties keep their
// relative input order in either direction.
func View(entries []*entry.Entry, opts Options) []*entry.Entry {
	selected := make(map[category.Category]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		selected[c] = true
	}

	filterTags := lowerTags(entry.SplitTags(opts.TagFilter))

	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if !selected[e.Category] {
			continue
		}
		if len(filterTags) > 0 && !anyTagMatch(filterTags, e.Tags) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], opts.Sort, opts.Ascending)
	})
	return out
}

// less is a strict three-way comparison: equal values report false both
// ways so SliceStable preserves input order regardless of direction.
func less(a, b *entry.Entry, field Field, ascending bool) bool {
	var before bool
	switch field {
	case SortCategory:
		if a.Category == b.Category {
			return false
		}
		before = a.Category < b.Category
	case SortUpdated:
		if a.Updated.Equal(b.Updated.Time) {
			return false
		}
		before = a.Updated.Before(b.Updated.Time)
	default:
		if a.Risk == b.Risk {
			return false
		}
		before = a.Risk < b.Risk
	}
	if ascending {
		return before
	}
	return !before
}

func lowerTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.ToLower(t))
	}
	return out
}

func anyTagMatch(filterTags []string, entryTags []string) bool {
	for _, want := range filterTags {
		for _, have := range entryTags {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}
