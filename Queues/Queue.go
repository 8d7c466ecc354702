package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError if there's none.
	Pop() (T, error)
	//Peek at the oldest item without removing it.
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current items.
	Shrink()
	Clear()
	Size() int
	resize(newLen int)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
