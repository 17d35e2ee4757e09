package Trees

import "fmt"

// Check the structure of the tree. It returns nil if the child links form a
// proper tree, the threads form a single ascending chain over all nodes with
// one absent end on each side, and Size matches the values held. Otherwise
// the error wraps ErrCorrupt. Check compares values, so it may also return a
// comparison error.
// Time: O(n); Space: O(n)
func (u *Tree[T]) Check() error {
	if u.root == nil {
		if u.sz != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrCorrupt, u.sz)
		}
		return nil
	}

	owned := make(map[*Node[T]]struct{})
	for st := []*Node[T]{u.root}; len(st) > 0; {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if _, dup := owned[n]; dup {
			return fmt.Errorf("%w: node %v reached twice through child links", ErrCorrupt, n.v)
		}
		owned[n] = struct{}{}
		if n.l == nil || n.r == nil {
			return fmt.Errorf("%w: node %v has an unset link", ErrCorrupt, n.v)
		}
		if n.cnt == 0 || (n.cnt > 1 && u.cfg.policy != Aggregate) {
			return fmt.Errorf("%w: node %v has count %d", ErrCorrupt, n.v, n.cnt)
		}
		for _, l := range [2]link[T]{n.l, n.r} {
			if c, ok := l.(child[T]); ok {
				if c.n == nil {
					return fmt.Errorf("%w: node %v owns a nil child", ErrCorrupt, n.v)
				}
				st = append(st, c.n)
			}
		}
	}

	var heads, tails int
	for n := range owned {
		for i, l := range [2]link[T]{n.l, n.r} {
			t, ok := l.(thread[T])
			if !ok {
				continue
			}
			if t.n == nil {
				if i == 0 {
					heads++
				} else {
					tails++
				}
			} else if _, in := owned[t.n]; !in {
				return fmt.Errorf("%w: node %v threads to a node outside the tree", ErrCorrupt, n.v)
			}
		}
	}
	if heads != 1 || tails != 1 {
		return fmt.Errorf("%w: %d nodes without predecessor and %d without successor", ErrCorrupt, heads, tails)
	}

	var prev *Node[T]
	seen, total := 0, 0
	for n := leftmost(u.root); n != nil; prev, n = n, n.next() {
		if seen++; seen > len(owned) {
			return fmt.Errorf("%w: thread chain loops", ErrCorrupt)
		}
		if t, ok := n.l.(thread[T]); ok && t.n != prev {
			return fmt.Errorf("%w: left thread of %v skips its predecessor", ErrCorrupt, n.v)
		}
		if prev != nil {
			if t, ok := prev.r.(thread[T]); ok && t.n != n {
				return fmt.Errorf("%w: right thread of %v skips its successor", ErrCorrupt, prev.v)
			}
			c, err := u.cmp(prev.v, n.v)
			if err != nil {
				return err
			}
			if c > 0 || (c == 0 && u.cfg.policy == Aggregate) {
				return fmt.Errorf("%w: %v precedes %v", ErrCorrupt, prev.v, n.v)
			}
		}
		total += int(n.cnt)
	}
	if seen != len(owned) {
		return fmt.Errorf("%w: thread chain visits %d of %d nodes", ErrCorrupt, seen, len(owned))
	}
	if total != u.sz {
		return fmt.Errorf("%w: size is %d but the tree holds %d values", ErrCorrupt, u.sz, total)
	}
	return nil
}
