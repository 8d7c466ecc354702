package Trees

import (
	"errors"
	"fmt"
	"iter"
)

// Map is an ordered key/value container implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling Min on an empty
// tree returns (x K, false). In this case the value of x is the zero value
// of K and shouldn't be used.
// Methods implemented recursively are noted, otherwise they are implemented
// iteratively.
type Map[K, V any] interface {
	//Put v under k. If k is already present its value is replaced and the
	//size doesn't change.
	Put(k K, v V)
	//Get the value stored under k. Returns a *MissingKeyError if k is absent.
	Get(k K) (V, error)
	//Contains k. Never fails; prefer it over Get when absence is expected.
	Contains(k K) bool
	//Delete k from the Map. Returns a *MissingKeyError if k is absent.
	Delete(k K) error
	//Size of the Map.
	Size() int
	//Keys in ascending order. The sequence can be ranged over any number
	//of times; each range starts a new traversal from the root.
	Keys() iter.Seq[K]
	//All key/value pairs in ascending key order.
	All() iter.Seq2[K, V]
	//Min key of the Map.
	Min() (K, bool)
	//Max key of the Map.
	Max() (K, bool)
	//Predecessor returns the greatest key less than k.
	Predecessor(k K) (K, bool)
	//Successor returns the smallest key greater than k.
	Successor(k K) (K, bool)
	//Corrupt returns whether the Map has corrupt structures, when the key
	//at some node violates the ordering, or when the links or the size
	//counter are inconsistent. This is to be distinguished from whether the
	//tree is balanced or not.
	Corrupt() bool
}

// ErrMissingKey is matched by every *MissingKeyError through errors.Is.
var ErrMissingKey = errors.New("Trees: missing key")

// MissingKeyError is returned by Get and Delete when the key isn't in the tree.
type MissingKeyError[K any] struct {
	Key K
}

func (e *MissingKeyError[K]) Error() string {
	return fmt.Sprintf("Trees: missing key %v", e.Key)
}

func (e *MissingKeyError[K]) Is(target error) bool {
	return target == ErrMissingKey
}

// Variant selects what the tree does after attaching a new node.
type Variant uint8

const (
	// Plain never rebalances; sorted insertions degrade it to a list.
	Plain Variant = iota
	// AVL restores |height(l)-height(r)|<=1 at every node after each Put.
	AVL
)

func (v Variant) String() string {
	switch v {
	case Plain:
		return "plain"
	case AVL:
		return "avl"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "plain", "bst":
		return Plain, nil
	case "avl":
		return AVL, nil
	}
	return Plain, fmt.Errorf("Trees: unknown variant %q", s)
}
