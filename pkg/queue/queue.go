// Package queue provides FIFO queues.
package queue

// Queue represents a basic FIFO queue.
type Queue[T any] interface {
	Enqueue(item T)
	Dequeue() (T, bool)
	Size() int
	Clear()
}
