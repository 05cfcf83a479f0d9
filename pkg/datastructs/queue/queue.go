package queue

// Queue is a generic interface for unbounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the tail of the queue.
	// It never fails; the queue grows as needed.
	Enqueue(item T)

	// Dequeue removes and returns the item at the head of the queue.
	// Returns ErrEmpty if the queue holds no items.
	Dequeue() (T, error)

	// Peek returns the item at the head of the queue without removing it.
	// Returns ErrEmpty if the queue holds no items.
	Peek() (T, error)

	// Len returns the number of items in the queue.
	Len() int

	// Cap returns the current allocated capacity of the queue.
	Cap() int
}
