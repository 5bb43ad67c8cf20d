package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingQueue_fifoOrder(t *testing.T) {
	var q Queue[int] = NewRingQueue[int](2)

	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 5, q.Size())

	for i := 0; i < 5; i++ {
		got, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}

	_, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Size())
}

func TestRingQueue_wrapAround(t *testing.T) {
	q := NewRingQueue[string](3)
	q.Enqueue("a")
	q.Enqueue("b")
	got, _ := q.Dequeue()
	assert.Equal(t, "a", got)

	// the tail wraps to the start of the buffer before growing
	q.Enqueue("c")
	q.Enqueue("d")
	q.Enqueue("e")
	assert.Equal(t, 4, q.Size())

	var out []string
	for q.Size() > 0 {
		item, _ := q.Dequeue()
		out = append(out, item)
	}
	assert.Equal(t, []string{"b", "c", "d", "e"}, out)
}

func TestRingQueue_Clear(t *testing.T) {
	q := NewRingQueue[int](0)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()
	assert.Equal(t, 0, q.Size())

	q.Enqueue(3)
	got, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}
