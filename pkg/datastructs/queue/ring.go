package queue

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultCapacity is the initial capacity of a RingBuffer created by New.
	DefaultCapacity = 8

	// minGrowCapacity is the capacity a zero-capacity buffer grows to on first insert.
	minGrowCapacity = 1
)

var _ Queue[int] = (*RingBuffer[int])(nil)
var _ fmt.Stringer = (*RingBuffer[int])(nil)

// RingBuffer is a circular FIFO queue over a single backing slice.
// It grows by doubling when an insert finds it full and never shrinks.
// A RingBuffer is not safe for concurrent use; wrap it in Synced if needed.
type RingBuffer[T any] struct {
	items []T
	start int // position of the head item
	end   int // next position to write to
	count int
}

// New creates an empty RingBuffer with DefaultCapacity.
func New[T any]() *RingBuffer[T] {
	return &RingBuffer[T]{items: make([]T, DefaultCapacity)}
}

// NewWithCapacity creates an empty RingBuffer holding up to capacity items
// before its first growth. A zero capacity is allowed.
func NewWithCapacity[T any](capacity int) (*RingBuffer[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &RingBuffer[T]{items: make([]T, capacity)}, nil
}

// Enqueue appends item at the tail, growing the buffer first if it is full.
func (rb *RingBuffer[T]) Enqueue(item T) {
	if rb.count == len(rb.items) {
		rb.grow(rb.count + 1)
	}

	rb.items[rb.end] = item
	rb.end = rb.wrapIndex(rb.end + 1)
	rb.count++
}

// EnqueueAll appends items in order. It grows at most once.
func (rb *RingBuffer[T]) EnqueueAll(items ...T) {
	if need := rb.count + len(items); need > len(rb.items) {
		rb.grow(need)
	}
	for _, item := range items {
		rb.Enqueue(item)
	}
}

// Dequeue removes and returns the head item.
// Returns ErrEmpty and leaves the buffer untouched when it holds no items.
func (rb *RingBuffer[T]) Dequeue() (T, error) {
	var zero T
	if rb.count == 0 {
		return zero, ErrEmpty
	}

	item := rb.items[rb.start]
	rb.items[rb.start] = zero // drop the reference held by the slot
	rb.start = rb.wrapIndex(rb.start + 1)
	rb.count--
	return item, nil
}

// DequeueInto removes up to len(out) items into out in FIFO order.
// Returns the number of items written.
func (rb *RingBuffer[T]) DequeueInto(out []T) int {
	n := 0
	for n < len(out) && rb.count > 0 {
		out[n], _ = rb.Dequeue()
		n++
	}
	return n
}

// Peek returns the head item without removing it.
func (rb *RingBuffer[T]) Peek() (T, error) {
	if rb.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return rb.items[rb.start], nil
}

// ToSlice returns a copy of all items in FIFO order.
// The result never shares memory with the buffer.
func (rb *RingBuffer[T]) ToSlice() []T {
	out := make([]T, 0, rb.count)
	head, tail := rb.peekAll()
	out = append(out, head...)
	return append(out, tail...)
}

// String renders the items in FIFO order as "[a, b, c]".
func (rb *RingBuffer[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sep := ""
	rb.walk(func(item T) bool {
		sb.WriteString(sep)
		fmt.Fprintf(&sb, "%v", item)
		sep = ", "
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}

// Len returns the number of items in the buffer.
func (rb *RingBuffer[T]) Len() int {
	return rb.count
}

// Cap returns the length of the backing slice.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.items)
}

// StartIndex returns the backing slice position of the head item.
func (rb *RingBuffer[T]) StartIndex() int {
	return rb.start
}

// EndIndex returns the backing slice position the next item will be written to.
func (rb *RingBuffer[T]) EndIndex() int {
	return rb.end
}

// IsEmpty returns true if the buffer holds no items.
func (rb *RingBuffer[T]) IsEmpty() bool {
	return rb.count == 0
}

// IsFull returns true if the next Enqueue will grow the buffer.
// A zero-capacity buffer is both empty and full.
func (rb *RingBuffer[T]) IsFull() bool {
	return rb.count == len(rb.items)
}

// Clear removes all items and resets the positions. Capacity is kept.
func (rb *RingBuffer[T]) Clear() {
	clear(rb.items)
	rb.start = 0
	rb.end = 0
	rb.count = 0
}

// peekAll returns the buffered items as at most two runs of the backing slice.
// The runs alias internal storage and must not leave the package.
func (rb *RingBuffer[T]) peekAll() (head, tail []T) {
	if rb.count == 0 {
		return nil, nil
	}

	// Simple case: no wrap-around
	if rb.start+rb.count <= len(rb.items) {
		return rb.items[rb.start : rb.start+rb.count], nil
	}

	// Wrap-around case
	return rb.items[rb.start:], rb.items[:rb.end]
}

// walk calls fn for each item in FIFO order until fn returns false.
func (rb *RingBuffer[T]) walk(fn func(T) bool) {
	head, tail := rb.peekAll()
	for _, item := range head {
		if !fn(item) {
			return
		}
	}
	for _, item := range tail {
		if !fn(item) {
			return
		}
	}
}

// wrapIndex returns idx wrapped within the buffer capacity.
func (rb *RingBuffer[T]) wrapIndex(idx int) int {
	return idx % len(rb.items)
}

// grow moves the items into a new backing slice of at least minCap,
// with the head at position 0.
func (rb *RingBuffer[T]) grow(minCap int) {
	newCap := rb.calculateGrowth(minCap)

	newItems := make([]T, newCap)
	head, tail := rb.peekAll()
	n := copy(newItems, head)
	copy(newItems[n:], tail)

	rb.items = newItems
	rb.start = 0
	rb.end = rb.count % newCap
}

// calculateGrowth doubles the current capacity until it fits minCap.
func (rb *RingBuffer[T]) calculateGrowth(minCap int) int {
	newCap := len(rb.items)
	if newCap == 0 {
		newCap = minGrowCapacity
	}
	for newCap < minCap {
		newCap *= 2
	}
	return newCap
}
