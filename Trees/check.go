package Trees

func height[K, V any](cur *node[K, V]) int {
	if cur == nil {
		return 0
	}
	return 1 + max(height(cur.l), height(cur.r))
}

// Height is the number of nodes on the longest path from the root down to
// a leaf; 0 for an empty tree. Recursive.
// Time: O(n)
func (u *Tree[K, V]) Height() int {
	return height(u.root)
}

// balanced returns the height of cur, or -1 if some subtree of cur is
// unbalanced.
func balanced[K, V any](cur *node[K, V]) int {
	if cur == nil {
		return 0
	}
	l := balanced(cur.l)
	if l < 0 {
		return -1
	}
	r := balanced(cur.r)
	if r < 0 || l-r > 1 || r-l > 1 {
		return -1
	}
	return 1 + max(l, r)
}

// Balanced reports whether the heights of the two subtrees of every node
// differ by at most 1. Holds for an AVL tree after any sequence of Put;
// Delete doesn't rebalance so it may break it. Recursive.
// Time: O(n)
func (u *Tree[K, V]) Balanced() bool {
	return balanced(u.root) >= 0
}

// Corrupt [Map.Corrupt]. Checks that an in-order walk is strictly
// increasing, that every child points back at its parent, that the root has
// no parent and that the walk visits exactly Size() nodes.
// Time: O(n); Space: O(D)
func (u *Tree[K, V]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	if u.root.p != nil {
		return true
	}
	var prev *node[K, V]
	n := 0
	st := make([]*node[K, V], 0, 8)
	for cur := u.root; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			if (cur.l != nil && cur.l.p != cur) || (cur.r != nil && cur.r.p != cur) {
				return true
			}
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != nil && u.cmp(prev.k, cur.k) >= 0 {
			return true
		}
		prev = cur
		n++
		cur = cur.r
	}
	return n != u.size
}
