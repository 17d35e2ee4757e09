package Trees

// link is one side of a Node. It's either a child, which owns the node it
// points to, or a thread, which only references the in-order neighbor on that
// side. A thread with a nil target marks the minimum (left) or maximum (right).
// The interface is sealed: child and thread are the only implementations.
type link[T any] interface {
	target() *Node[T]
}

type child[T any] struct{ n *Node[T] }

type thread[T any] struct{ n *Node[T] }

func (c child[T]) target() *Node[T]  { return c.n }
func (t thread[T]) target() *Node[T] { return t.n }

// Node in the Tree. The zero value is meaningless; nodes are created by a
// NodeFactory and linked by the Tree.
type Node[T any] struct {
	v    T
	l, r link[T]
	cnt  uint
	// Aux is free for the NodeFactory to use. The tree never reads it.
	Aux any
}

// NodeFactory creates the node holding v. It may return a node carrying extra
// data in Aux, but never nil. The tree resets the links and count of whatever
// is returned.
type NodeFactory[T any] func(v T) *Node[T]

// NewNode is the default NodeFactory.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{v: v}
}

// Value stored in the node.
func (u *Node[T]) Value() T {
	return u.v
}

// Count of equal values aggregated into this node. Always 1 unless the tree
// uses the Aggregate policy.
func (u *Node[T]) Count() uint {
	return u.cnt
}

// leftChild returns the owned left subtree, or nil if the left side is a thread.
func (u *Node[T]) leftChild() *Node[T] {
	if c, ok := u.l.(child[T]); ok {
		return c.n
	}
	return nil
}

func (u *Node[T]) rightChild() *Node[T] {
	if c, ok := u.r.(child[T]); ok {
		return c.n
	}
	return nil
}

// leftmost node of the subtree rooting at u, following only child links.
// Time: O(D); Space: O(1)
func leftmost[T any](u *Node[T]) *Node[T] {
	if u == nil {
		return nil
	}
	for l := u.leftChild(); l != nil; l = u.leftChild() {
		u = l
	}
	return u
}

func rightmost[T any](u *Node[T]) *Node[T] {
	if u == nil {
		return nil
	}
	for r := u.rightChild(); r != nil; r = u.rightChild() {
		u = r
	}
	return u
}

// next is the in-order successor of u, nil if u is the maximum.
// Time: amortized O(1)
func (u *Node[T]) next() *Node[T] {
	switch r := u.r.(type) {
	case child[T]:
		return leftmost(r.n)
	case thread[T]:
		return r.n
	}
	return nil
}

// prev is the in-order predecessor of u, nil if u is the minimum.
func (u *Node[T]) prev() *Node[T] {
	switch l := u.l.(type) {
	case child[T]:
		return rightmost(l.n)
	case thread[T]:
		return l.n
	}
	return nil
}
