package inline

import (
	"fmt"
	"reflect"
)

// Check validates the container invariants: the logical length is within
// capacity and every dead slot holds the zero value.
//
// This checker is meant for tests and debugging sessions.
func (v *Vec[T, S]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil container", ErrCorrupted)
	}
	if v.n < 0 || v.n > len(v.store) {
		return fmt.Errorf("%w: length %d outside capacity %d", ErrCorrupted, v.n, len(v.store))
	}
	for i := v.n; i < len(v.store); i++ {
		if !reflect.ValueOf(&v.store[i]).Elem().IsZero() {
			return fmt.Errorf("%w: dead slot %d is not zero", ErrCorrupted, i)
		}
	}
	return nil
}
