package Trees

import (
	"cmp"
)

// Tree is an ordered map backed by a binary search tree. Every key in the
// left subtree of a node is less than the node's key and every key in the
// right subtree is greater.
// The Variant chosen at construction decides what happens after a new node
// is attached: Plain does nothing, so the height D is O(n) in the worst
// case; AVL rebalances through rotations, so D<=1.44*log2(n+2).
// Deletion never rebalances in either variant.
// The zero value isn't usable, create trees with New or NewFunc.
// A Tree isn't safe for concurrent use.
type Tree[K, V any] struct {
	root    *node[K, V]
	size    int
	cmp     func(a, b K) int
	variant Variant
}

var _ Map[int, any] = (*Tree[int, any])(nil)

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any](variant Variant) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp.Compare[K], variant: variant}
}

// NewFunc returns an empty tree for keys ordered by compare, which must
// return a negative number when a<b, zero when a==b and a positive number
// when a>b.
func NewFunc[K, V any](variant Variant, compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: compare, variant: variant}
}

// Variant the tree was created with.
func (u *Tree[K, V]) Variant() Variant {
	return u.variant
}

// Size [Map.Size]
// Time: O(1); Space: O(1)
func (u *Tree[K, V]) Size() int {
	return u.size
}

// Clear the tree. O(1), the nodes are left to the garbage collector.
func (u *Tree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// Put [Map.Put]
// Descends from the root going left when k is less than the current key
// and right otherwise, then attaches a new leaf at the empty slot.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Put(k K, v V) {
	if u.root == nil {
		u.root = &node[K, V]{k: k, v: v}
		u.size++
		return
	}
	for cur := u.root; ; {
		c := u.cmp(k, cur.k)
		if c == 0 {
			cur.v = v
			return
		}
		next := &cur.r
		if c < 0 {
			next = &cur.l
		}
		if *next == nil {
			*next = &node[K, V]{k: k, v: v, p: cur}
			u.size++
			if u.variant == AVL {
				u.updateBalance(*next)
			}
			return
		}
		cur = *next
	}
}

// find the node holding k, nil if there's none. Recursive.
// Time: O(D)
func (u *Tree[K, V]) find(cur *node[K, V], k K) *node[K, V] {
	if cur == nil {
		return nil
	}
	if c := u.cmp(k, cur.k); c == 0 {
		return cur
	} else if c < 0 {
		return u.find(cur.l, k)
	}
	return u.find(cur.r, k)
}

// Get [Map.Get]. Recursive.
// Time: O(D)
func (u *Tree[K, V]) Get(k K) (V, error) {
	if n := u.find(u.root, k); n != nil {
		return n.v, nil
	}
	return *new(V), &MissingKeyError[K]{k}
}

// Contains [Map.Contains]. Recursive.
// Time: O(D)
func (u *Tree[K, V]) Contains(k K) bool {
	return u.find(u.root, k) != nil
}

// Delete [Map.Delete]. After locating the node n holding k:
//   - a leaf is detached from its parent;
//   - a node with one child is spliced out by linking the child to n's
//     parent, except at the root where the child's data is copied into n so
//     the root node keeps its identity;
//   - a node with two children takes the key and value of its in-order
//     successor, which has no left child and is spliced out instead.
//
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Delete(k K) error {
	n := u.find(u.root, k)
	if n == nil {
		return &MissingKeyError[K]{k}
	}
	if n.l != nil && n.r != nil {
		s := n.next()
		u.spliceOut(s)
		n.k, n.v = s.k, s.v
	} else if c := n.only(); c != nil && n.p == nil {
		n.replaceData(c.k, c.v, c.l, c.r, c.bf)
	} else {
		u.spliceOut(n)
	}
	u.size--
	return nil
}

// spliceOut n, which must have at most one child.
func (u *Tree[K, V]) spliceOut(n *node[K, V]) {
	u.relink(n, n.only())
	n.p, n.l, n.r = nil, nil, nil
}

// Min [Map.Min]
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Min() (K, bool) {
	if u.root == nil {
		return *new(K), false
	}
	return u.root.leftmost().k, true
}

// Max [Map.Max]
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Max() (K, bool) {
	if u.root == nil {
		return *new(K), false
	}
	return u.root.rightmost().k, true
}

// Predecessor [Map.Predecessor]. k doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Predecessor(k K) (K, bool) {
	var p *node[K, V]
	for cur := u.root; cur != nil; {
		if u.cmp(k, cur.k) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.k, true
}

// Successor [Map.Successor]. k doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Successor(k K) (K, bool) {
	var p *node[K, V]
	for cur := u.root; cur != nil; {
		if u.cmp(k, cur.k) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.k, true
}
