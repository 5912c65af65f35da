package records

import "strings"

// record is any persisted item addressable by its opaque id
type record interface {
	RecordID() string
}

// prepend returns a fresh slice with rec in front (most-recent-first order)
func prepend[T any](items []T, rec T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, rec)
	return append(next, items...)
}

// update applies fn to the record matching id. Unknown ids are a no-op.
func update[T record](items []T, id string, fn func(T) T) []T {
	next := make([]T, len(items))
	for i, it := range items {
		if it.RecordID() == id {
			next[i] = fn(it)
		} else {
			next[i] = it
		}
	}
	return next
}

// removeByID drops the record matching id, preserving order. Unknown ids are
// a no-op.
func removeByID[T record](items []T, id string) []T {
	next := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() != id {
			next = append(next, it)
		}
	}
	return next
}

// reject drops every record for which drop returns true, preserving order
func reject[T any](items []T, drop func(T) bool) []T {
	next := make([]T, 0, len(items))
	for _, it := range items {
		if !drop(it) {
			next = append(next, it)
		}
	}
	return next
}

// countWhere counts records for which keep returns true
func countWhere[T any](items []T, keep func(T) bool) int {
	n := 0
	for _, it := range items {
		if keep(it) {
			n++
		}
	}
	return n
}

// searchFilter returns the records whose searchable text contains the query,
// case-insensitively, preserving order. A blank query returns everything.
func searchFilter[T any](items []T, query string, text func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	next := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(text(it)), q) {
			next = append(next, it)
		}
	}
	return next
}
