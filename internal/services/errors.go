package services

import (
    "errors"
    "fmt"

    "github.com/preceptoria/backend/internal/repository"
)

// NotFoundError: a lookup by id or document matched nothing.
type NotFoundError struct {
    Resource string
}

func (e NotFoundError) Error() string {
    return e.Resource + " not found"
}

// ValidationError: the request itself is wrong (missing field, bad file type,
// blank rejection reason). Field is optional.
type ValidationError struct {
    Field   string
    Message string
}

func (e ValidationError) Error() string {
    if e.Field != "" {
        return e.Field + ": " + e.Message
    }
    return e.Message
}

// ConflictError: a uniqueness rule was violated.
type ConflictError struct {
    Message string
}

func (e ConflictError) Error() string {
    return e.Message
}

// StorageError: the file store failed; the database record is untouched.
type StorageError struct {
    Op  string
    Err error
}

func (e StorageError) Error() string {
    return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

// BackendError: an unexpected persistence failure.
type BackendError struct {
    Op  string
    Err error
}

func (e BackendError) Error() string {
    return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e BackendError) Unwrap() error { return e.Err }

// wrapRepo converts repository sentinels into the service taxonomy.
func wrapRepo(err error, resource, op string) error {
    switch {
    case err == nil:
        return nil
    case errors.Is(err, repository.ErrNotFound):
        return NotFoundError{Resource: resource}
    case errors.Is(err, repository.ErrDuplicate):
        return ConflictError{Message: resource + " already exists"}
    default:
        return BackendError{Op: op, Err: err}
    }
}
