package lit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	lit1 := New(1, false)
	lit2 := New(2, false)
	lit3 := New(3, true)

	q.Insert(lit1)
	q.Insert(lit2)
	q.Insert(lit3)

	assert.Equal(t, 3, q.Size())
	assert.Equal(t, lit1, q.Dequeue())
	assert.Equal(t, lit2, q.Dequeue())
	assert.Equal(t, lit3, q.Dequeue())
	assert.Equal(t, 0, q.Size())
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue()

	assert.Equal(t, Undef, q.Dequeue())
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Insert(New(1, false))
	q.Insert(New(2, false))

	q.Clear()
	assert.Equal(t, 0, q.Size())
}
