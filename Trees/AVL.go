package Trees

// updateBalance walks up from the freshly attached node n. Each step adds 1
// to the parent's balance factor when coming from the left and subtracts 1
// when coming from the right. The walk stops once a parent's factor becomes
// 0, since that subtree didn't grow, or at the first node whose factor left
// [-1,1], which is rebalanced; its subtree then has the height it had
// before the insertion.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) updateBalance(n *node[K, V]) {
	for {
		if n.bf > 1 || n.bf < -1 {
			u.rebalance(n)
			return
		}
		if n.p == nil {
			return
		}
		if n.isLeft() {
			n.p.bf++
		} else {
			n.p.bf--
		}
		if n.p.bf == 0 {
			return
		}
		n = n.p
	}
}

// rebalance n whose balance factor is +-2. A right heavy n whose right child
// is left heavy needs the child rotated right first (zig-zag), otherwise a
// single left rotation at n is enough. Left heavy is symmetric.
// Delete leaves balance factors stale, so the children a rotation needs
// are checked rather than assumed.
// Time: O(1)
func (u *Tree[K, V]) rebalance(n *node[K, V]) {
	if n.bf < 0 && n.r != nil {
		if n.r.bf > 0 && n.r.l != nil {
			u.rotateRight(n.r)
		}
		u.rotateLeft(n)
	} else if n.bf > 0 && n.l != nil {
		if n.l.bf < 0 && n.l.r != nil {
			u.rotateLeft(n.l)
		}
		u.rotateRight(n)
	}
}
