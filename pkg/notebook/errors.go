package notebook

import (
	"errors"
	"fmt"
)

// ErrMissingContent is returned when an edit operation is invoked without
// any content source.
var ErrMissingContent = errors.New("no content provided")

// IndexError reports a cell index outside the valid range of an operation.
// Max is the highest valid index for that operation.
type IndexError struct {
	Index int
	Max   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell index %d out of range (0-%d)", e.Index, e.Max)
}

// IsIndexError reports whether err is an IndexError.
func IsIndexError(err error) bool {
	var target *IndexError
	return errors.As(err, &target)
}
