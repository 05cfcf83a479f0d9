package queue

import "sync"

var _ Queue[int] = (*Synced[int])(nil)

// Synced is a RingBuffer guarded by a mutex.
// Every method holds the lock for its whole duration.
type Synced[T any] struct {
	mu sync.Mutex
	rb *RingBuffer[T]
}

// NewSynced creates an empty Synced queue with DefaultCapacity.
func NewSynced[T any]() *Synced[T] {
	return &Synced[T]{rb: New[T]()}
}

// NewSyncedWithCapacity creates an empty Synced queue with the given capacity.
func NewSyncedWithCapacity[T any](capacity int) (*Synced[T], error) {
	rb, err := NewWithCapacity[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Synced[T]{rb: rb}, nil
}

func (s *Synced[T]) Enqueue(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rb.Enqueue(item)
}

func (s *Synced[T]) EnqueueAll(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rb.EnqueueAll(items...)
}

func (s *Synced[T]) Dequeue() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.Dequeue()
}

func (s *Synced[T]) DequeueInto(out []T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.DequeueInto(out)
}

func (s *Synced[T]) Peek() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.Peek()
}

func (s *Synced[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.Len()
}

func (s *Synced[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.Cap()
}

// ToSlice returns a copy of all items in FIFO order.
func (s *Synced[T]) ToSlice() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.ToSlice()
}

func (s *Synced[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.String()
}

// Clear removes all items and keeps the capacity.
func (s *Synced[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rb.Clear()
}
