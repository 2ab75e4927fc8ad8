package query

import "github.com/alexanderramin/nexus/internal/domain"

// All is the facet value that disables a filter.
const All = "all"

// FilterByFacet keeps the records whose facet equals value exactly.
// value == All keeps everything.
func FilterByFacet[T any](items []T, facet func(T) string, value string) []T {
	if value == All {
		return clone(items)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if facet(item) == value {
			out = append(out, item)
		}
	}
	return out
}

// CountByStatus counts records in status.
func CountByStatus[T domain.Record[T]](items []T, status domain.Status) int {
	return CountWhere(items, func(item T) bool {
		return item.CurrentStatus() == status
	})
}

// CountWhere counts records matching pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}
