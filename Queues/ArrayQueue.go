package Queues

// circArrQ keeps its items in content[head:tail], wrapping around the end of
// content. head==tail is ambiguous, so sz tells empty from full.
type circArrQ[T any] struct {
	sz, head, tail int
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap int) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, max(initCap, 1))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

func (u *circArrQ[T]) Size() int {
	return u.sz
}

// resize copies the items to the front of a new slice of newLen>=sz.
func (u *circArrQ[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

func (u *circArrQ[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

// Clear drops all items. The backing slice is zeroed so the items can be
// collected.
func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

// Push item at the tail, growing by 3/2 when full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == len(u.content) {
		u.resize(max(u.sz*3/2, u.sz+1))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % len(u.content)
	u.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *circArrQ[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.content)
	u.sz--
	return t, nil
}

// Peek [Queue.Peek]
func (u *circArrQ[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[u.head], true
}
