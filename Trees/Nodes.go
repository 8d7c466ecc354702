package Trees

// A node in the Tree.
// l and r are owned by the node; p only points back up and is used for
// walking towards the root, splicing and rotating.
// bf is height(l)-height(r) and is only kept up to date by the AVL variant.
type node[K, V any] struct {
	k    K
	v    V
	l, r *node[K, V]
	p    *node[K, V]
	bf   int
}

func (n *node[K, V]) isLeft() bool {
	return n.p != nil && n.p.l == n
}

func (n *node[K, V]) isRight() bool {
	return n.p != nil && n.p.r == n
}

// only child of n, nil if n has zero or two children.
func (n *node[K, V]) only() *node[K, V] {
	if n.l == nil {
		return n.r
	} else if n.r == nil {
		return n.l
	}
	return nil
}

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next node in in-order. If n has a right subtree it's the leftmost node
// there, otherwise it's the first ancestor reached from a left child.
// Time: amortized O(1)
func (n *node[K, V]) next() *node[K, V] {
	if n.r != nil {
		return n.r.leftmost()
	}
	for n.isRight() {
		n = n.p
	}
	return n.p
}

// replaceData overwrites n's entry and children with the given ones and
// adopts the children. Used when n is the root and must keep its identity.
func (n *node[K, V]) replaceData(k K, v V, l, r *node[K, V], bf int) {
	n.k, n.v, n.l, n.r, n.bf = k, v, l, r, bf
	if l != nil {
		l.p = n
	}
	if r != nil {
		r.p = n
	}
}

// relink makes nw take old's place under old's parent, or at the root.
func (u *Tree[K, V]) relink(old, nw *node[K, V]) {
	if nw != nil {
		nw.p = old.p
	}
	if old.p == nil {
		u.root = nw
	} else if old.isLeft() {
		old.p.l = nw
	} else {
		old.p.r = nw
	}
}

// rotateLeft promotes r's right child c into r's place. r becomes c's left
// child and c's old left subtree becomes r's right subtree. Balance factors
// are adjusted from subtree height algebra instead of being measured.
// Time: O(1); Space: O(1)
func (u *Tree[K, V]) rotateLeft(r *node[K, V]) {
	c := r.r
	r.r = c.l
	if c.l != nil {
		c.l.p = r
	}
	u.relink(r, c)
	c.l = r
	r.p = c
	r.bf += 1 - min(c.bf, 0)
	c.bf += 1 + max(r.bf, 0)
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *Tree[K, V]) rotateRight(r *node[K, V]) {
	c := r.l
	r.l = c.r
	if c.r != nil {
		c.r.p = r
	}
	u.relink(r, c)
	c.r = r
	r.p = c
	r.bf -= 1 + max(c.bf, 0)
	c.bf -= 1 - min(r.bf, 0)
}
