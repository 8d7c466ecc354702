package Trees

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// factors checks every stored balance factor against measured heights and
// returns the height of cur.
func factors[K, V any](t *testing.T, cur *node[K, V]) int {
	t.Helper()
	if cur == nil {
		return 0
	}
	l, r := factors(t, cur.l), factors(t, cur.r)
	require.Equal(t, l-r, cur.bf, "balance factor of %v", cur.k)
	return 1 + max(l, r)
}

func TestAVL_Ascending(t *testing.T) {
	avl, plain := New[int, int](AVL), New[int, int](Plain)
	for k := 1; k <= 5; k++ {
		avl.Put(k, k)
		plain.Put(k, k)
	}
	assert.Equal(t, int(math.Ceil(math.Log2(6))), avl.Height())
	assert.Equal(t, 5, plain.Height())
	assert.True(t, avl.Balanced())
	assert.False(t, plain.Balanced())
	assert.Equal(t, 2, avl.root.k)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(avl.Keys()))
	factors(t, avl.root)
}

func TestAVL_Rotations(t *testing.T) {
	cases := []struct {
		name string
		keys []int
	}{
		{"right-right", []int{1, 2, 3}},
		{"left-left", []int{3, 2, 1}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := New[int, string](AVL)
			for _, k := range c.keys {
				tree.Put(k, "")
			}
			require.Equal(t, 2, tree.root.k)
			assert.Nil(t, tree.root.p)
			assert.Equal(t, 1, tree.root.l.k)
			assert.Equal(t, 3, tree.root.r.k)
			for _, n := range []*node[int, string]{tree.root, tree.root.l, tree.root.r} {
				assert.Equal(t, 0, n.bf)
			}
			assert.False(t, tree.Corrupt())
		})
	}
}

func TestAVL_RotationBelowRoot(t *testing.T) {
	tree := New[int, int](AVL)
	for _, k := range []int{50, 25, 75, 60, 90, 95} {
		tree.Put(k, k)
	}
	// 95 leaves 75 at -1 and pushes the root to -2, so the left rotation
	// happens at the root.
	assert.Equal(t, 75, tree.root.k)
	assert.Equal(t, 50, tree.root.l.k)
	assert.Equal(t, 90, tree.root.r.k)
	assert.Same(t, tree.root, tree.root.l.p)
	assert.Equal(t, 60, tree.root.l.r.k)
	assert.Same(t, tree.root.l, tree.root.l.r.p)
	factors(t, tree.root)
	assert.False(t, tree.Corrupt())

	tree = New[int, int](AVL)
	for _, k := range []int{50, 25, 75, 10, 90, 95} {
		tree.Put(k, k)
	}
	// here 75 is the first node out of range, the root stays
	assert.Equal(t, 50, tree.root.k)
	assert.Equal(t, 90, tree.root.r.k)
	assert.Same(t, tree.root, tree.root.r.p)
	factors(t, tree.root)
}

func TestAVL_RandomPuts(t *testing.T) {
	const n = 20000
	tree := New[int, int](AVL)
	for i := range n {
		tree.Put(rg.Intn(n*4), i)
		if i%1000 == 0 {
			require.True(t, tree.Balanced())
		}
	}
	require.True(t, tree.Balanced())
	require.False(t, tree.Corrupt())
	h := factors(t, tree.root)
	assert.Equal(t, h, tree.Height())
	assert.LessOrEqual(t, float64(h), 1.44*math.Log2(float64(tree.Size())+2))
}

func TestAVL_SortedPuts(t *testing.T) {
	const n = 1 << 12
	up, down := New[int, int](AVL), New[int, int](AVL)
	for i := range n {
		up.Put(i, i)
		down.Put(n-i, i)
	}
	for _, tree := range []*Tree[int, int]{up, down} {
		assert.True(t, tree.Balanced())
		assert.LessOrEqual(t, tree.Height(), 13)
		factors(t, tree.root)
	}
}

func TestAVL_OverwriteKeepsShape(t *testing.T) {
	tree := New[int, int](AVL)
	for k := range 7 {
		tree.Put(k, k)
	}
	before := tree.Height()
	for k := range 7 {
		tree.Put(k, -k)
	}
	assert.Equal(t, before, tree.Height())
	assert.Equal(t, 7, tree.Size())
	factors(t, tree.root)
}

func TestAVL_DeleteDoesNotRebalance(t *testing.T) {
	tree := New[int, int](AVL)
	for k := 1; k <= 7; k++ {
		tree.Put(k, k)
	}
	require.Equal(t, 4, tree.root.k)
	require.Equal(t, 3, tree.Height())
	for _, k := range []int{1, 3, 2} {
		require.NoError(t, tree.Delete(k))
	}
	assert.Equal(t, 4, tree.root.k)
	assert.Nil(t, tree.root.l)
	assert.False(t, tree.Balanced())
	assert.False(t, tree.Corrupt())
	assert.Equal(t, []int{4, 5, 6, 7}, slices.Collect(tree.Keys()))

	// puts after deletes keep the ordering intact
	for k := 8; k <= 40; k++ {
		tree.Put(k, k)
	}
	assert.False(t, tree.Corrupt())
	assert.Equal(t, 37, tree.Size())
}
