package queue

import "iter"

// All returns an iterator over the items in FIFO order.
// The buffer must not be modified while iterating.
func (rb *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		rb.walk(yield)
	}
}

// Each calls fn for each item in FIFO order.
// It stops iteration if fn returns an error.
func (rb *RingBuffer[T]) Each(fn func(item T) error) error {
	var err error
	rb.walk(func(item T) bool {
		err = fn(item)
		return err == nil
	})
	return err
}
