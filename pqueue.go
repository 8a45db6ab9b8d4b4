package huffcodec

import (
	"github.com/chronos-tachyon/assert"
)

// PriorityQueue is a fixed-capacity queue of Nodes ordered by ascending
// Frequency.
//
// Items are kept sorted by descending Frequency from front to back, and
// Dequeue removes from the back.  Enqueue never moves an item past another
// item of equal Frequency.
//
type PriorityQueue struct {
	items []*Node
}

// NewPriorityQueue constructs an empty PriorityQueue that holds at most
// capacity Nodes.
func NewPriorityQueue(capacity int) *PriorityQueue {
	assert.Assertf(capacity > 0, "priority queue capacity %d <= 0", capacity)
	return &PriorityQueue{items: make([]*Node, 0, capacity)}
}

// IsEmpty returns true iff the queue holds no Nodes.
func (q *PriorityQueue) IsEmpty() bool {
	return len(q.items) == 0
}

// IsFull returns true iff the queue is at capacity.
func (q *PriorityQueue) IsFull() bool {
	return len(q.items) == cap(q.items)
}

// Len returns the number of Nodes in the queue.
func (q *PriorityQueue) Len() int {
	return len(q.items)
}

// Cap returns the capacity of the queue.
func (q *PriorityQueue) Cap() int {
	return cap(q.items)
}

// Enqueue inserts n into the queue.  It returns false, leaving the queue
// unchanged, if the queue is full.
func (q *PriorityQueue) Enqueue(n *Node) bool {
	if q.IsFull() {
		return false
	}

	// One sweep from front to back: whenever the carried node is strictly
	// heavier than the slot, the heavier one stays and the lighter one is
	// carried on.  Whatever is carried at the end becomes the new tail.
	curr := n
	for i, item := range q.items {
		if curr.Frequency > item.Frequency {
			q.items[i], curr = curr, item
		}
	}
	q.items = append(q.items, curr)
	return true
}

// Dequeue removes and returns the Node with the smallest Frequency.  It
// returns false if the queue is empty.
func (q *PriorityQueue) Dequeue() (*Node, bool) {
	if q.IsEmpty() {
		return nil, false
	}
	last := len(q.items) - 1
	n := q.items[last]
	q.items[last] = nil
	q.items = q.items[:last]
	return n, true
}
