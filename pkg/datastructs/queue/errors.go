package queue

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when reading from an empty queue.
	ErrEmpty = errors.New("queue is empty")

	// ErrInvalidCapacity is returned when a queue is created with a negative capacity.
	ErrInvalidCapacity = errors.New("queue capacity must not be negative")
)
