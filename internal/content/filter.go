package content

import (
	"slices"
	"strings"
	"time"

	"portfolio/internal/model"
)

// Accepted date layouts, most specific first. The month-name forms cover
// blog dates written like "Oct 12, 2023".
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 02, 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseDate parses s with the accepted layouts. ok is false when none match.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// VisibleItems returns the items to display for mode, after an optional
// case-insensitive title search. The input slice is never modified.
//
// featured keeps flagged items in their original order. recent keeps every
// item, newest first; equal dates keep their original order and unparseable
// dates sort after every parseable one.
func VisibleItems[T model.Listable](items []T, mode model.FilterMode, search string) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(search)
	for _, it := range items {
		if needle != "" && !strings.Contains(strings.ToLower(it.ItemTitle()), needle) {
			continue
		}
		if mode == model.FilterFeatured && !it.IsFeatured() {
			continue
		}
		out = append(out, it)
	}
	if mode != model.FilterRecent {
		return out
	}

	type dated struct {
		item T
		at   time.Time
		ok   bool
	}
	keyed := make([]dated, len(out))
	for i, it := range out {
		at, ok := ParseDate(it.ItemDate())
		keyed[i] = dated{item: it, at: at, ok: ok}
	}
	slices.SortStableFunc(keyed, func(a, b dated) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		return b.at.Compare(a.at)
	})
	for i := range keyed {
		out[i] = keyed[i].item
	}
	return out
}

// Preview returns at most n leading items as a new slice.
func Preview[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return slices.Clone(items[:n])
}
