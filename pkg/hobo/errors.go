package hobo

import (
	"errors"
	"fmt"

	"github.com/hobolog/hobo-go/pkg/hobo/labels"
)

// Sentinel errors.
var (
	// ErrReaderClosed is returned when a closed Reader is used.
	ErrReaderClosed = errors.New("reader is closed")

	// ErrFollowerClosed is returned when a closed Follower is used.
	ErrFollowerClosed = errors.New("follower is closed")

	// ErrAlreadyFollowing is returned when Follow is called twice on the
	// same Follower.
	ErrAlreadyFollowing = errors.New("already following")
)

// MissingColumnError reports that the preamble was exhausted without
// resolving a mandatory column. Role is timestamp or temperature; the
// optional humidity and battery columns never produce this error.
type MissingColumnError struct {
	Role labels.Role
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no %s column found in header", e.Role)
}

// FieldError reports a numeric field that could not be parsed. It carries
// the column role and the raw text for diagnostics.
type FieldError struct {
	Role  labels.Role
	Text  string
	Cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid numeric %s field: %q", e.Role, e.Text)
}

// Unwrap returns the underlying parse error, enabling errors.Is/As.
func (e *FieldError) Unwrap() error {
	return e.Cause
}
