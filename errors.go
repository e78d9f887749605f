package procenv

import (
	"errors"
	"fmt"

	"github.com/pgavlin/procenv/osstr"
)

// ErrNotPresent is returned by Var when the variable is not set.
var ErrNotPresent = errors.New("environment variable not present")

// A NotUnicodeError is returned by Var when the variable is set but its
// value is not valid Unicode. Raw holds the value; VarOs returns the same
// data without the decoding requirement.
type NotUnicodeError struct {
	Raw osstr.String
}

func (e *NotUnicodeError) Error() string {
	return fmt.Sprintf("environment variable was not valid unicode: %q", e.Raw.Lossy())
}
