// Package Trees implements a threaded binary search tree. Links that would
// otherwise be nil hold the in-order predecessor or successor, so traversals
// need neither recursion nor a stack. The tree isn't balanced: its depth D is
// O(log n) on random insertion orders and O(n) on sorted ones.
// Receivers that have a bool as a second return value indicate whether the
// first return value is defined, as in Minimum on an empty tree.
// Methods that compare values return an error as the last value; it is only
// ever non-nil when a user supplied comparator panics, and in that case the
// tree is left untouched.
// Trees are not safe for concurrent use.
package Trees

import "fmt"

// Policy decides what happens when a value equal to an existing one is inserted.
type Policy uint8

const (
	// Aggregate keeps one node per distinct value and counts the copies.
	Aggregate Policy = iota
	// AllowDuplicates inserts a new node to the right of the equal one, so
	// equal values keep their insertion order.
	AllowDuplicates
)

func (p Policy) String() string {
	switch p {
	case Aggregate:
		return "aggregate"
	case AllowDuplicates:
		return "duplicate"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// RemoveCase is the structural case a successful Remove went through.
type RemoveCase uint8

const (
	RootLeaf RemoveCase = iota
	RootOneChild
	RootBothChildren
	Leaf
	OneChild
	BothChildren
	// Decrement is an Aggregate removal that only lowered a node's count.
	Decrement
	numRemoveCases
)

var removeCaseNames = [numRemoveCases]string{"root_leaf", "root_one_child", "root_both_children", "leaf", "one_child", "both_children", "decrement"}

func (c RemoveCase) String() string {
	if c < numRemoveCases {
		return removeCaseNames[c]
	}
	return fmt.Sprintf("RemoveCase(%d)", uint8(c))
}

// RemoveCases lists every RemoveCase in order.
func RemoveCases() []RemoveCase {
	cs := make([]RemoveCase, numRemoveCases)
	for i := range cs {
		cs[i] = RemoveCase(i)
	}
	return cs
}

type config struct {
	policy   Policy
	factory  any
	hashKey  any
	observer func(RemoveCase)
}

// Option configures a Tree at construction.
type Option func(*config)

// WithPolicy sets the duplicate policy. The default is Aggregate.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithFactory makes the tree create its nodes with f. T must match the
// tree's value type, otherwise the constructor panics.
func WithFactory[T any](f NodeFactory[T]) Option {
	return func(c *config) { c.factory = f }
}

// WithHashKey makes Hash render key(v) instead of v. key must map values the
// comparator treats as equal to values that print the same, such as
// lower-casing strings for a case-insensitive comparator.
func WithHashKey[T any](key func(T) any) Option {
	return func(c *config) { c.hashKey = key }
}

// WithObserver registers f to be called once after every successful Remove.
// Trees built by Union and Difference don't inherit it.
func WithObserver(f func(RemoveCase)) Option {
	return func(c *config) { c.observer = f }
}
