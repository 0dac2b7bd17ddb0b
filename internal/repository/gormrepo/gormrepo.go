// Package gormrepo implements the repository interfaces on Postgres via gorm.
package gormrepo

import (
    "errors"

    "gorm.io/gorm"

    "github.com/preceptoria/backend/internal/repository"
)

// translate maps gorm errors onto the repository sentinels so callers never
// import gorm.
func translate(err error) error {
    switch {
    case err == nil:
        return nil
    case errors.Is(err, gorm.ErrRecordNotFound):
        return repository.ErrNotFound
    case errors.Is(err, gorm.ErrDuplicatedKey):
        return repository.ErrDuplicate
    default:
        return err
    }
}
