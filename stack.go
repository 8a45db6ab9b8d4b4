package huffcodec

import (
	"github.com/chronos-tachyon/assert"
)

// Stack is a fixed-capacity LIFO of Nodes, used while rebuilding a tree from
// its dump.
type Stack struct {
	items []*Node
}

// NewStack constructs an empty Stack that holds at most capacity Nodes.
func NewStack(capacity int) *Stack {
	assert.Assertf(capacity >= 0, "stack capacity %d < 0", capacity)
	return &Stack{items: make([]*Node, 0, capacity)}
}

// IsEmpty returns true iff the stack holds no Nodes.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

// IsFull returns true iff the stack is at capacity.
func (s *Stack) IsFull() bool {
	return len(s.items) == cap(s.items)
}

// Len returns the number of Nodes on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

// Push adds n to the top of the stack.  It returns false if the stack is
// full.
func (s *Stack) Push(n *Node) bool {
	if s.IsFull() {
		return false
	}
	s.items = append(s.items, n)
	return true
}

// Pop removes and returns the top of the stack.  It returns false if the
// stack is empty.
func (s *Stack) Pop() (*Node, bool) {
	if s.IsEmpty() {
		return nil, false
	}
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return n, true
}
