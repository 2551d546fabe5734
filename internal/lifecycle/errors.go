package lifecycle

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. The HTTP layer maps these to status
// codes and never inspects anything beyond the kind and message.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrValidationRejected = errors.New("validation rejected")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidationRejected, fmt.Sprintf(format, args...))
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func conflictErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
