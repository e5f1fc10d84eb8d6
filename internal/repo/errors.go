package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInvalidInput marks requests that reference rows outside the stated
// parent scope (e.g. reordering with a task id from another column).
var ErrInvalidInput = errors.New("invalid input")

// NotFoundError carries the entity name so handlers can surface
// "Board not found" style messages; it still matches
// gorm.ErrRecordNotFound through errors.Is.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return gorm.ErrRecordNotFound
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func firstOrNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return err
}
