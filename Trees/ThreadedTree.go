package Trees

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-threadedtree/Sets"
	"golang.org/x/exp/constraints"
)

// Tree is a threaded binary search tree. Every child link owns a node; every
// other link is a thread to the in-order neighbor on that side, so the nodes
// form a doubly linked list in ascending order at all times. Exactly one node
// has an absent left thread (the minimum) and one an absent right thread (the
// maximum).
// Create it with New, From, NewFunc, FromFunc or NewWithComparator; the zero
// value has no comparator.
type Tree[T any] struct {
	root    *Node[T]
	sz      int
	cmp     func(a, b T) (int, error)
	factory NodeFactory[T]
	hashKey func(T) any
	cfg     config
}

var (
	_ containers.Container              = (*Tree[int])(nil)
	_ Sets.ExtendedSet[int, *Tree[int]] = (*Tree[int])(nil)
)

// New empty tree ordering T naturally.
func New[T constraints.Ordered](opts ...Option) *Tree[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// From builds a tree by inserting every element of vs in order.
// Time: O(n*D)
func From[T constraints.Ordered](vs []T, opts ...Option) *Tree[T] {
	u := New[T](opts...)
	for _, v := range vs {
		if err := u.Insert(v); err != nil {
			panic(err) // cmp.Compare doesn't panic
		}
	}
	return u
}

// NewFunc returns an empty tree ordered by cmp, which returns a negative
// number when a<b, a positive number when a>b and 0 otherwise. cmp may panic on
// values it can't compare; the tree reports that as ErrTypeComparison.
// If cmp treats values as equal that print differently, pass WithHashKey so
// that Equal trees hash the same.
func NewFunc[T any](cmp func(a, b T) int, opts ...Option) *Tree[T] {
	u := &Tree[T]{cmp: guard(cmp), factory: NewNode[T]}
	for _, o := range opts {
		o(&u.cfg)
	}
	if u.cfg.factory != nil {
		f, ok := u.cfg.factory.(NodeFactory[T])
		if !ok {
			panic(fmt.Sprintf("Trees: %T can't build nodes for this tree", u.cfg.factory))
		}
		u.factory = f
	}
	if u.cfg.hashKey != nil {
		k, ok := u.cfg.hashKey.(func(T) any)
		if !ok {
			panic(fmt.Sprintf("Trees: %T can't key values of this tree", u.cfg.hashKey))
		}
		u.hashKey = k
	}
	return u
}

// FromFunc is NewFunc followed by inserting every element of vs. It stops at
// the first element that can't be compared.
func FromFunc[T any](cmp func(a, b T) int, vs []T, opts ...Option) (*Tree[T], error) {
	u := NewFunc(cmp, opts...)
	for _, v := range vs {
		if err := u.Insert(v); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// NewWithComparator returns an empty tree of interface values ordered by a
// gods comparator, such as utils.IntComparator. Comparators that panic on
// unexpected types make the tree operations return ErrTypeComparison.
func NewWithComparator(c utils.Comparator, opts ...Option) *Tree[any] {
	return NewFunc(func(a, b any) int { return c(a, b) }, opts...)
}

// derive an empty tree with the same ordering and configuration, minus the
// observer: removals in the new tree aren't removals from u.
func (u *Tree[T]) derive() *Tree[T] {
	t := &Tree[T]{cmp: u.cmp, factory: u.factory, hashKey: u.hashKey, cfg: u.cfg}
	t.cfg.observer = nil
	return t
}

func (u *Tree[T]) newNode(v T, l, r link[T]) *Node[T] {
	n := u.factory(v)
	if n == nil {
		panic(fmt.Sprintf("Trees: node factory returned nil for %v", v))
	}
	n.v, n.l, n.r, n.cnt = v, l, r, 1
	return n
}

// Size is the number of values in the tree, counting aggregated copies.
// Time: O(1); Space: O(1)
func (u *Tree[T]) Size() int {
	return u.sz
}

// Empty reports whether the tree holds no values.
func (u *Tree[T]) Empty() bool {
	return u.sz == 0
}

// Clear removes every value. Time: O(1)
func (u *Tree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Policy the tree was created with.
func (u *Tree[T]) Policy() Policy {
	return u.cfg.policy
}

// Insert v into the tree. An equal value is either aggregated into the
// existing node or inserted as a new node after it, depending on the Policy.
// Time: O(D); Space: O(1)
func (u *Tree[T]) Insert(v T) error {
	if u.root == nil {
		u.root = u.newNode(v, thread[T]{}, thread[T]{})
		u.sz = 1
		return nil
	}
	for cur := u.root; ; {
		c, err := u.cmp(v, cur.v)
		if err != nil {
			return err
		}
		if c == 0 && u.cfg.policy == Aggregate {
			cur.cnt++
			break
		}
		if c < 0 {
			if l := cur.leftChild(); l != nil {
				cur = l
				continue
			}
			// the new node takes over cur's left thread and threads back to cur.
			cur.l = child[T]{u.newNode(v, cur.l, thread[T]{cur})}
			break
		}
		if r := cur.rightChild(); r != nil {
			cur = r
			continue
		}
		cur.r = child[T]{u.newNode(v, thread[T]{cur}, cur.r)}
		break
	}
	u.sz++
	return nil
}

// locate the node holding v and its parent. n is nil if v isn't in the tree;
// parent is nil if n is the root.
// Time: O(D); Space: O(1)
func (u *Tree[T]) locate(v T) (n, parent *Node[T], err error) {
	for n = u.root; n != nil; {
		var c int
		if c, err = u.cmp(v, n.v); err != nil {
			return nil, nil, err
		} else if c == 0 {
			return n, parent, nil
		}
		parent = n
		if c < 0 {
			n = n.leftChild()
		} else {
			n = n.rightChild()
		}
	}
	return nil, nil, nil
}

// Find whether v is in the tree.
// Time: O(D); Space: O(1)
func (u *Tree[T]) Find(v T) (bool, error) {
	n, _, err := u.locate(v)
	return n != nil, err
}

// Has is Find for callers that treat values that can't be compared as absent.
func (u *Tree[T]) Has(v T) bool {
	ok, _ := u.Find(v)
	return ok
}

// Minimum value in the tree.
// Time: O(D); Space: O(1)
func (u *Tree[T]) Minimum() (T, bool) {
	if n := leftmost(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Maximum value in the tree.
// Time: O(D); Space: O(1)
func (u *Tree[T]) Maximum() (T, bool) {
	if n := rightmost(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// InOrder returns a closure f acting like an iterator over the values in
// ascending order: val, valid = f(). val is meaningful only if valid is true.
// Each call to InOrder starts a new traversal. Aggregated values are repeated
// Count times. The tree must not be modified while f is in use.
// Time: f(): amortized O(1); Space: O(1)
func (u *Tree[T]) InOrder() func() (T, bool) {
	cur, rep := leftmost(u.root), uint(0)
	return func() (v T, ok bool) {
		if cur == nil {
			return
		}
		v, ok = cur.v, true
		if rep++; rep >= cur.cnt {
			cur, rep = cur.next(), 0
		}
		return
	}
}

// InOrderR is InOrder in descending order.
func (u *Tree[T]) InOrderR() func() (T, bool) {
	cur, rep := rightmost(u.root), uint(0)
	return func() (v T, ok bool) {
		if cur == nil {
			return
		}
		v, ok = cur.v, true
		if rep++; rep >= cur.cnt {
			cur, rep = cur.prev(), 0
		}
		return
	}
}

func seq[T any](f func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := f(); ok; v, ok = f() {
			if !yield(v) {
				return
			}
		}
	}
}

// All values in ascending order, for use with range.
func (u *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) { seq(u.InOrder())(yield) }
}

// Backward yields all values in descending order.
func (u *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) { seq(u.InOrderR())(yield) }
}

// Slice of all values in ascending order.
func (u *Tree[T]) Slice() []T {
	return Sets.Collect[T](u, u.sz)
}

// Values implements containers.Container.
func (u *Tree[T]) Values() []interface{} {
	out := make([]interface{}, 0, u.sz)
	for v := range u.All() {
		out = append(out, v)
	}
	return out
}

func (u *Tree[T]) String() string {
	return fmt.Sprint(u.Slice())
}

// Equal reports whether both trees yield equal values in the same order.
// Values that can't be compared are unequal.
// Time: O(n); Space: O(1)
func (u *Tree[T]) Equal(other *Tree[T]) bool {
	if other == nil {
		return false
	}
	if u.sz != other.sz {
		return false
	}
	return Sets.EqualFunc[T](u, other, func(x, y T) bool {
		c, err := u.cmp(x, y)
		return err == nil && c == 0
	})
}

// Hash of the in-order values, rendered with %v or through the WithHashKey
// function. Equal trees hash the same as long as the comparator only equates
// values with equal renderings, which holds for New and From trees.
// The hash is stale as soon as the tree is modified.
func (u *Tree[T]) Hash() uint64 {
	if u.hashKey != nil {
		return Sets.HashFunc[T](u, u.hashKey)
	}
	return Sets.Hash[T](u)
}

// Union returns a new tree, configured like u except for the observer, holding the values of both
// trees. Neither operand is modified.
// Time: O((n+m)*D)
func (u *Tree[T]) Union(other *Tree[T]) (*Tree[T], error) {
	if other == nil {
		return nil, ErrInvalidOperand
	}
	t := u.derive()
	for _, s := range [2]*Tree[T]{other, u} {
		for v := range s.All() {
			if err := t.Insert(v); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// Difference returns a new tree, configured like u except for the observer, holding the values of u
// with one copy removed for each value of other. Values of other that aren't
// in u are ignored. Neither operand is modified.
// Time: O((n+m)*D)
func (u *Tree[T]) Difference(other *Tree[T]) (*Tree[T], error) {
	if other == nil {
		return nil, ErrInvalidOperand
	}
	t := u.derive()
	for v := range u.All() {
		if err := t.Insert(v); err != nil {
			return nil, err
		}
	}
	for v := range other.All() {
		if _, err := t.Remove(v); err != nil {
			return nil, err
		}
	}
	return t, nil
}
