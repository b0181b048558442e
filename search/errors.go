package search

import (
    "errors"
    "fmt"
)

// ValidationError reports a bad request before any data access happens.
type ValidationError struct {
    Reason string
}

func (e *ValidationError) Error() string {
    return e.Reason
}

// DataInconsistencyError means a scenario override referenced trains or
// stations the schedule store could not find. It signals a seeding problem,
// not a user error, and the orchestrator degrades it to an empty result.
type DataInconsistencyError struct {
    Message string
}

func (e *DataInconsistencyError) Error() string {
    return e.Message
}

// StorageError wraps a failure of the backing data source. It is propagated
// unchanged to the caller; retrying is the caller's business.
type StorageError struct {
    Op  string
    Err error
}

func (e *StorageError) Error() string {
    return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
    return e.Err
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
    var ve *ValidationError
    return errors.As(err, &ve)
}
