package saga

// sumTag identifies which variant of a Sum is populated.
type sumTag int

const (
	tagFirst sumTag = iota + 1
	tagSecond
)

// Sum is a closed, two-variant tagged union: it holds either an L (the
// "first" variant) or an R (the "second" variant), never both. Combine and
// Merge use it to run sagas with unrelated types under one unified type,
// with the tag recording which side a value came from.
//
// Construct values with First or Second; the variant never changes after
// construction. The zero Sum holds neither variant and both accessors
// report absence.
type Sum[L, R any] struct {
	tag    sumTag
	first  L
	second R
}

// First constructs a Sum holding the first variant.
func First[L, R any](value L) Sum[L, R] {
	return Sum[L, R]{tag: tagFirst, first: value}
}

// Second constructs a Sum holding the second variant.
func Second[L, R any](value R) Sum[L, R] {
	return Sum[L, R]{tag: tagSecond, second: value}
}

// IsFirst reports whether the first variant is present.
func (s Sum[L, R]) IsFirst() bool {
	return s.tag == tagFirst
}

// IsSecond reports whether the second variant is present.
func (s Sum[L, R]) IsSecond() bool {
	return s.tag == tagSecond
}

// First returns the first variant's payload and true if present, or the
// zero value and false otherwise.
func (s Sum[L, R]) First() (L, bool) {
	if s.tag != tagFirst {
		var zero L
		return zero, false
	}
	return s.first, true
}

// Second returns the second variant's payload and true if present, or the
// zero value and false otherwise.
func (s Sum[L, R]) Second() (R, bool) {
	if s.tag != tagSecond {
		var zero R
		return zero, false
	}
	return s.second, true
}
