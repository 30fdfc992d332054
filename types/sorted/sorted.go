package sorted

import (
	"gopkg.in/typ.v4"
)

// Slice is a slice of values kept sorted by a comparator function.
// Lookup uses iterative binary search, so search and membership tests run
// in O(log n) while insertion and removal shift the tail in O(n).
// NOTE: Not thread-safe.
type Slice[T any] struct {
	compare func(a, b T) int
	items   []T
}

// NewSlice creates a new sorted slice using a comparator function that is
// expected to return 0 if a == b, a negative value if a < b, and a positive
// value if a > b.
func NewSlice[T any](compare func(a, b T) int) Slice[T] {
	return Slice[T]{
		compare: compare,
		items:   make([]T, 0),
	}
}

// NewOrderedSlice creates a new sorted slice using a default comparator
// function for any ordered type (ints, uints, floats, strings).
func NewOrderedSlice[T typ.Ordered]() Slice[T] {
	return NewSlice[T](typ.Compare[T])
}

// Len returns the number of stored values.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// At returns the value at the given index.
func (s *Slice[T]) At(i int) T {
	return s.items[i]
}

// Ref returns a pointer to the value at the given index.
// The pointer stays valid until the next insertion or removal.
func (s *Slice[T]) Ref(i int) *T {
	return &s.items[i]
}

// Items returns the underlying slice ordered by the comparator.
// The result must not be modified by the caller.
func (s *Slice[T]) Items() []T {
	return s.items
}

// Search locates the given value and returns its index and true when an
// equal value is stored. Otherwise it returns the index at which inserting
// the value keeps the slice sorted, and false.
func (s *Slice[T]) Search(v T) (int, bool) {
	lo, hi := 0, len(s.items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.compare(s.items[mid], v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.items) && s.compare(s.items[lo], v) == 0 {
		return lo, true
	}
	return lo, false
}

// InsertAt splices the given value in at the given index.
// Passing an index not produced by Search breaks the sort order.
func (s *Slice[T]) InsertAt(i int, v T) {
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
}

// RemoveAt removes the value at the given index shifting the rest left.
func (s *Slice[T]) RemoveAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Clone returns an independent copy sharing only the comparator.
func (s *Slice[T]) Clone() Slice[T] {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Slice[T]{
		compare: s.compare,
		items:   items,
	}
}

// CloneHead returns an independent copy truncated to at most n values.
func (s *Slice[T]) CloneHead(n int) Slice[T] {
	if n > len(s.items) {
		n = len(s.items)
	}
	items := make([]T, n)
	copy(items, s.items[:n])
	return Slice[T]{
		compare: s.compare,
		items:   items,
	}
}
