package Sets

// Set of distinct elements.
type Set[E any] interface {
	//Put e, returns false if e was already in the Set.
	Put(E) bool
	Has(E) bool
	//Remove e, returns false if e wasn't in the Set.
	Remove(E) bool
	Size() int
	//Take removes and returns some element; which one depends on the
	//implementation. The bool is false when the Set is empty.
	Take() (E, bool)
	//Range calls f on elements until f returns false.
	Range(f func(E) bool)
}
