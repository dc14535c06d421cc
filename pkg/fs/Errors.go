// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOption is returned when an option list contains the zero option.
	ErrNilOption = errors.New("nil copy option")

	// ErrUnsupported is returned when an operation, or an attribute model,
	// is not supported by a provider.  Copying a symbolic link between
	// providers always returns an error wrapping ErrUnsupported.
	ErrUnsupported = errors.New("operation not supported")

	// ErrSecurityDenied is returned when a provider denies access to
	// identity-bearing metadata, such as ownership or permission bits,
	// rather than to the file content itself.
	ErrSecurityDenied = errors.New("access to file security information denied")

	// ErrAtomicMoveNotSupported is returned by Move when OptionAtomicMove
	// is requested.  A move between providers is implemented as a copy
	// followed by a delete and cannot be atomic.
	ErrAtomicMoveNotSupported = errors.New("atomic move between providers is not supported")
)

// UnsupportedOptionError is returned when an option list contains a token
// that is not a recognized copy option.
type UnsupportedOptionError struct {
	Option Option
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("%q is not a recognized copy option", e.Option.String())
}

// RollbackError is returned when a copy fails after the destination was
// written and the rollback deletion of the destination also fails.  The
// original failure is the primary cause and the rollback failure is carried
// alongside it, so neither hides the other.
type RollbackError struct {
	Err      error // the original failure
	Rollback error // the failure deleting the destination
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("%s (rollback failed: %s)", e.Err.Error(), e.Rollback.Error())
}

func (e *RollbackError) Unwrap() []error {
	return []error{e.Err, e.Rollback}
}
