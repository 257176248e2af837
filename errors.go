package vector

import "fmt"

// ErrLengthMismatch indicates that a runtime sequence's size disagrees with
// the type-level length it was declared to have.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d elements, got %d", e.Expected, e.Actual)
}
