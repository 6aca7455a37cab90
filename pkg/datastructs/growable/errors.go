package growable

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("growable: index out of range")

	// ErrEmptyContainer is returned when removing from an empty buffer.
	ErrEmptyContainer = errors.New("growable: buffer is empty")
)

// IndexOutOfRangeError reports an index outside the valid range of an operation.
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("growable: %s: index %d is out of range, size equals to %d", e.Op, e.Index, e.Size)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func outOfRange(op string, index, size int) error {
	return errors.WithStack(&IndexOutOfRangeError{Op: op, Index: index, Size: size})
}

func empty(op string) error {
	return errors.Wrap(ErrEmptyContainer, op)
}
