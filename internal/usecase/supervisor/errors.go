package supervisor

import "errors"

// ErrSupervisorNotFound indicates that the requested supervisor does not exist.
var ErrSupervisorNotFound = errors.New("supervisor not found")
