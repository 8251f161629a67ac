package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a package, feature or header
	// position does not exist in the current snapshot.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownField is returned for Field values outside the declared set.
	ErrUnknownField = errors.New("unknown field")
)

func indexError(kind string, index, length int) error {
	return fmt.Errorf("%s %d (len %d): %w", kind, index, length, ErrIndexOutOfRange)
}
