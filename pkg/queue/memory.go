package queue

const (
	// DefaultCapacity is the initial capacity of a ring queue created with a non-positive capacity.
	DefaultCapacity = 16
)

// RingQueue implements an in-memory FIFO queue on a growable ring buffer.
// It is not safe for concurrent use.
type RingQueue[T any] struct {
	items []T
	head  int
	size  int
}

// NewRingQueue creates a new queue with room for capacity items before it grows.
func NewRingQueue[T any](capacity int) *RingQueue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RingQueue[T]{
		items: make([]T, capacity),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *RingQueue[T]) Enqueue(item T) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	q.size++
}

// Dequeue removes and returns the item from the front of the queue.
// It returns false if the queue is empty.
func (q *RingQueue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Size returns the current size of the queue.
func (q *RingQueue[T]) Size() int {
	return q.size
}

// Clear removes all items from the queue.
func (q *RingQueue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.head = 0
	q.size = 0
}

func (q *RingQueue[T]) grow() {
	newCap := len(q.items) * 2
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	items := make([]T, newCap)
	for i := 0; i < q.size; i++ {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items = items
	q.head = 0
}
