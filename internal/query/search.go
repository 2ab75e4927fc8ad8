// Package query holds the pure derivations every screen consumes: search,
// facet filters, status counts and the recent-activity feed. Nothing here
// mutates its input.
package query

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Field names one searchable text field of T.
type Field[T any] struct {
	Name  string
	Value func(T) string
}

// Search returns the records where any of fields contains term, compared
// case-insensitively after Unicode normalization. An empty term matches
// everything. Input order is preserved.
func Search[T any](items []T, term string, fields ...Field[T]) []T {
	if term == "" {
		return clone(items)
	}

	fold := newFolder()
	needle := fold(term)

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields {
			if strings.Contains(fold(f.Value(item)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SelectFields picks fields from all by name, in the order requested.
func SelectFields[T any](all []Field[T], names ...string) ([]Field[T], error) {
	out := make([]Field[T], 0, len(names))
	for _, name := range names {
		found := false
		for _, f := range all {
			if strings.EqualFold(f.Name, name) {
				out = append(out, f)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown search field %q", name)
		}
	}
	return out, nil
}

// newFolder returns a case-folding function. A cases.Caser keeps state, so
// each search gets its own.
func newFolder() func(string) string {
	caser := cases.Fold()
	return func(s string) string {
		return caser.String(norm.NFC.String(s))
	}
}

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
