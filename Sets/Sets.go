package Sets

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Sequence is anything that can be walked in ascending order. InOrder
// returns a closure acting like an iterator: v, valid = f(). v is meaningful
// only if valid is true, and valid can't turn true after it became false.
type Sequence[E any] interface {
	InOrder() func() (E, bool)
}

// Set is an ordered collection of E. Operations that compare elements return
// an error when the elements can't be compared.
type Set[E any] interface {
	Sequence[E]
	Insert(E) error
	Find(E) (bool, error)
	Remove(E) (bool, error)
	Size() int
}

// ExtendedSet is a Set that builds new sets of its own type S.
type ExtendedSet[E any, S any] interface {
	Set[E]
	// Union returns a new set holding the elements of both.
	Union(S) (S, error)
	// Difference returns a new set holding the receiver's elements minus the argument's.
	Difference(S) (S, error)
	Equal(S) bool
	Hash() uint64
}

// EqualFunc reports whether a and b yield the same elements in the same order,
// using eq to compare elements.
// Time: O(n); Space: O(1)
func EqualFunc[E any](a, b Sequence[E], eq func(x, y E) bool) bool {
	fa, fb := a.InOrder(), b.InOrder()
	for {
		x, okA := fa()
		y, okB := fb()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !eq(x, y) {
			return false
		}
	}
}

// Hash of the elements of s in order. Elements are rendered with %v, so two
// sequences whose elements print the same hash the same.
// The result is only meaningful while s isn't modified.
func Hash[E any](s Sequence[E]) uint64 {
	return HashFunc(s, func(v E) any { return v })
}

// HashFunc is Hash rendering key(v) for every element v.
func HashFunc[E any](s Sequence[E], key func(E) any) uint64 {
	d := xxhash.New()
	f := s.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		fmt.Fprintf(d, "%v\x1f", key(v))
	}
	return d.Sum64()
}

// Collect the elements of s into a slice.
func Collect[E any](s Sequence[E], hint int) []E {
	out := make([]E, 0, hint)
	f := s.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		out = append(out, v)
	}
	return out
}
