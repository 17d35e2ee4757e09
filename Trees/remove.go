package Trees

// Remove one copy of v from the tree. It returns false, and leaves the tree
// unchanged, if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *Tree[T]) Remove(v T) (bool, error) {
	if u.root == nil {
		return false, nil
	}
	n, parent, err := u.locate(v)
	if n == nil {
		return false, err
	}
	var c RemoveCase
	if n.cnt > 1 {
		n.cnt--
		c = Decrement
	} else {
		c = u.unlink(n, parent)
	}
	u.sz--
	if u.cfg.observer != nil {
		u.cfg.observer(c)
	}
	return true, nil
}

// unlink detaches n, whose parent is parent (nil for the root), and moves the
// subtrees n owned into its place. The thread chain skips n afterwards.
// Time: O(D); Space: O(1)
func (u *Tree[T]) unlink(n, parent *Node[T]) RemoveCase {
	l, r := n.leftChild(), n.rightChild()
	var repl *Node[T] // takes n's place under parent
	var c RemoveCase
	switch {
	case l == nil && r == nil:
		c = Leaf
	case r == nil:
		// n's predecessor is the rightmost node of l and threads to n.
		rightmost(l).r = n.r
		repl, c = l, OneChild
	case l == nil:
		leftmost(r).l = n.l
		repl, c = r, OneChild
	default:
		// r replaces n; l hangs off the leftmost node of r, which is n's successor.
		succ := leftmost(r)
		rightmost(l).r = thread[T]{succ}
		succ.l = child[T]{l}
		repl, c = r, BothChildren
	}

	if parent == nil {
		u.root = repl
		n.l, n.r = nil, nil
		switch c {
		case Leaf:
			return RootLeaf
		case OneChild:
			return RootOneChild
		}
		return RootBothChildren
	}

	onLeft := parent.leftChild() == n
	switch {
	case repl != nil && onLeft:
		parent.l = child[T]{repl}
	case repl != nil:
		parent.r = child[T]{repl}
	case onLeft:
		// parent is n's successor; it now threads to n's predecessor.
		parent.l = n.l
	default:
		parent.r = n.r
	}
	n.l, n.r = nil, nil
	return c
}
