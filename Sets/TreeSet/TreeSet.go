package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-ordtree/Sets"
	"github.com/g-m-twostay/go-ordtree/Trees"
)

// TreeSet is an ordered Set stored as the keys of a Trees.Tree. Take
// returns the smallest element and Range visits elements in ascending order.
type TreeSet[E cmp.Ordered] struct {
	t *Trees.Tree[E, struct{}]
}

var _ Sets.Set[int] = (*TreeSet[int])(nil)

func New[E cmp.Ordered](variant Trees.Variant) *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E, struct{}](variant)}
}

// Of builds a TreeSet holding es; repeated elements are kept once.
func Of[E cmp.Ordered](variant Trees.Variant, es ...E) *TreeSet[E] {
	s := New[E](variant)
	for _, e := range es {
		s.t.Put(e, struct{}{})
	}
	return s
}

func (u *TreeSet[E]) Put(e E) bool {
	if u.t.Contains(e) {
		return false
	}
	u.t.Put(e, struct{}{})
	return true
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Contains(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Delete(e) == nil
}

func (u *TreeSet[E]) Size() int {
	return u.t.Size()
}

// Take the minimum.
func (u *TreeSet[E]) Take() (E, bool) {
	e, ok := u.t.Min()
	if ok {
		_ = u.t.Delete(e)
	}
	return e, ok
}

// Range in ascending order. f mustn't modify u.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for e := range u.t.Keys() {
		if !f(e) {
			return
		}
	}
}

// Slice of the elements in ascending order.
func (u *TreeSet[E]) Slice() []E {
	s := make([]E, 0, u.t.Size())
	for e := range u.t.Keys() {
		s = append(s, e)
	}
	return s
}
