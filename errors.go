package huffcodec

import (
	"errors"
)

var (
	// ErrQueueFull is returned when a PriorityQueue is already at capacity.
	ErrQueueFull = errors.New("priority queue is full")

	// ErrQueueEmpty is returned when a PriorityQueue has nothing to dequeue.
	ErrQueueEmpty = errors.New("priority queue is empty")

	// ErrStackFull is returned when a Stack is already at capacity.
	ErrStackFull = errors.New("stack is full")

	// ErrStackEmpty is returned when a Stack has nothing to pop.
	ErrStackEmpty = errors.New("stack is empty")

	// ErrCodeOverflow is returned when a Code would exceed MaxCodeBits.
	ErrCodeOverflow = errors.New("code exceeds maximum length")

	// ErrFormatMismatch is returned when the input is not a recognized
	// compressed stream.
	ErrFormatMismatch = errors.New("not a huffcodec stream")

	// ErrTruncatedInput is returned when the input ends before a declared
	// length has been satisfied.
	ErrTruncatedInput = errors.New("truncated input")
)
