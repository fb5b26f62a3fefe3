package inline

import (
	"errors"
	"fmt"
)

var (
	// ErrFull signals that a container is at capacity.
	ErrFull = errors.New("inline: container is full")
	// ErrCorrupted signals a violated container invariant.
	ErrCorrupted = errors.New("inline: container invariant violated")
)

// CapacityError is returned by Push on a full container. It carries the
// rejected item, whose ownership stays with the caller.
type CapacityError[T any] struct {
	Item T   // the rejected item
	Cap  int // capacity of the container
}

func (e *CapacityError[T]) Error() string {
	return fmt.Sprintf("%s (capacity %d)", ErrFull.Error(), e.Cap)
}

// Unwrap makes errors.Is(err, ErrFull) hold.
func (e *CapacityError[T]) Unwrap() error {
	return ErrFull
}
