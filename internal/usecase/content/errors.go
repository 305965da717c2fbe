package content

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the actor is not a super administrator.
var ErrUnauthorized = errors.New("super administrator role required")

// PersistError reports a failed store write. Op names the operation that failed.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
