// Package history provides a bounded undo stack of drawing snapshots.
package history

import (
	"github.com/moomshiner/MiaNote/internal/sketch"
)

// DefaultCapacity is the undo depth used by the application.
const DefaultCapacity = 256

// Stack is a fixed-capacity undo history backed by a ring buffer.
// Push appends at the tail; when the stack is full the oldest entry at
// the head is evicted first. Pop removes from the tail only, so the
// ordering is FIFO at the head and LIFO at the tail. The capacity is
// fixed at construction and never resized.
type Stack struct {
	entries []sketch.Snapshot
	head    int
	size    int
}

// NewStack creates a stack holding at most capacity snapshots.
// A capacity below 1 is treated as 1.
func NewStack(capacity int) *Stack {
	if capacity < 1 {
		capacity = 1
	}
	return &Stack{entries: make([]sketch.Snapshot, capacity)}
}

// Push appends a snapshot at the tail, evicting the oldest entry when
// the stack is already full.
func (s *Stack) Push(snap sketch.Snapshot) {
	if s.size == len(s.entries) {
		s.entries[s.head] = nil
		s.head = (s.head + 1) % len(s.entries)
		s.size--
	}
	s.entries[(s.head+s.size)%len(s.entries)] = snap
	s.size++
}

// Pop removes and returns the most recently pushed snapshot.
// The second return value is false if the stack is empty, in which
// case the stack is left unchanged.
func (s *Stack) Pop() (sketch.Snapshot, bool) {
	if s.size == 0 {
		return nil, false
	}
	tail := (s.head + s.size - 1) % len(s.entries)
	snap := s.entries[tail]
	s.entries[tail] = nil
	s.size--
	return snap, true
}

// Clear empties the stack.
func (s *Stack) Clear() {
	for i := range s.entries {
		s.entries[i] = nil
	}
	s.head = 0
	s.size = 0
}

// CanUndo reports whether a Pop would return an entry.
func (s *Stack) CanUndo() bool {
	return s.size > 0
}

// Len returns the number of stored snapshots.
func (s *Stack) Len() int {
	return s.size
}

// Cap returns the fixed capacity.
func (s *Stack) Cap() int {
	return len(s.entries)
}
