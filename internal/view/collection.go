// Package view derives the filtered and paginated presentation of a
// mutable backing list. Derivations are pure and recomputed on demand;
// replacing the items or the search term invalidates pagination back to
// the first page.
package view

import (
	"strings"
	"sync"
)

// Collection is a two-stage derivation (search filter, then pagination)
// over items of any type. The title function supplies the string the
// search term is matched against.
type Collection[T any] struct {
	mu       sync.Mutex
	items    []T
	term     string // trimmed and lower-cased
	page     int
	pageSize int
	title    func(T) string
}

// New creates a collection with the given page size. A non-positive page
// size is treated as 1.
func New[T any](pageSize int, title func(T) string) *Collection[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Collection[T]{page: 1, pageSize: pageSize, title: title}
}

// SetItems replaces the backing collection wholesale and returns to the
// first page.
func (c *Collection[T]) SetItems(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.page = 1
}

// SetSearchTerm updates the filter. Matching is a case-insensitive
// substring test against the title; a blank term matches everything.
// Changing the term returns to the first page.
func (c *Collection[T]) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = strings.ToLower(strings.TrimSpace(term))
	c.page = 1
}

// Items returns a copy of the unfiltered backing collection.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Filtered returns the items whose title contains the search term,
// preserving original order.
func (c *Collection[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

// Page returns the current page of the filtered items: a contiguous slice
// of at most pageSize elements.
func (c *Collection[T]) Page() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	start := (c.page - 1) * c.pageSize
	if start >= len(filtered) {
		return []T{}
	}
	end := min(start+c.pageSize, len(filtered))
	return filtered[start:end]
}

// SetPage moves to page n. Requests outside [1, TotalPages] are rejected
// and leave the current page unchanged; the return value reports whether
// the move happened.
func (c *Collection[T]) SetPage(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 || n > c.totalPagesLocked() {
		return false
	}
	c.page = n
	return true
}

// CurrentPage returns the 1-based current page.
func (c *Collection[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// TotalPages returns the page count of the filtered set, never less
// than 1 so pagination controls always have a page to show.
func (c *Collection[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

// PageSize returns the configured page size.
func (c *Collection[T]) PageSize() int {
	return c.pageSize
}

func (c *Collection[T]) filteredLocked() []T {
	if c.term == "" {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out
	}
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(c.title(item)), c.term) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) totalPagesLocked() int {
	pages := (len(c.filteredLocked()) + c.pageSize - 1) / c.pageSize
	return max(pages, 1)
}
