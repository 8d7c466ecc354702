package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-ordtree/Queues"
)

func (u *Tree[K, V]) keys(cur *node[K, V], yield func(K) bool) bool {
	if cur == nil {
		return true
	}
	return u.keys(cur.l, yield) && yield(cur.k) && u.keys(cur.r, yield)
}

// Keys [Map.Keys]. Recursive; the left subtree is emitted, then the node,
// then the right subtree. The tree mustn't be modified during the range.
// Time: O(n) for a full range; Space: O(D)
func (u *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		u.keys(u.root, yield)
	}
}

// All [Map.All]. Follows parent links from the minimum, so no stack is
// kept. The tree mustn't be modified during the range.
// Time: amortized O(1) per pair; Space: O(1)
func (u *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if u.root == nil {
			return
		}
		for cur := u.root.leftmost(); cur != nil; cur = cur.next() {
			if !yield(cur.k, cur.v) {
				return
			}
		}
	}
}

// InOrder returns a closure f acting like an iterator over the keys.
// Calling f is like calling "Next()" of iterators: key, valid=f(). key is
// meaningful only if valid is true. Once valid is false f is exhausted.
// The pending nodes are kept on an explicit stack: the left spine of the
// subtree still to be visited.
// Time: f(): amortized O(1); Space: O(D)
func (u *Tree[K, V]) InOrder() func() (K, bool) {
	st := make([]*node[K, V], 0, 8)
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (k K, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.k, true
	}
}

type levelItem[K, V any] struct {
	n     *node[K, V]
	depth int
}

// LevelOrder calls f on every key breadth first, root at depth 0, left to
// right within a depth. Stops early when f returns false.
// Time: O(n); Space: O(width of the tree)
func (u *Tree[K, V]) LevelOrder(f func(k K, depth int) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[K, V]](16)
	q.Push(levelItem[K, V]{u.root, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.n.k, it.depth) {
			return
		}
		if it.n.l != nil {
			q.Push(levelItem[K, V]{it.n.l, it.depth + 1})
		}
		if it.n.r != nil {
			q.Push(levelItem[K, V]{it.n.r, it.depth + 1})
		}
	}
}
