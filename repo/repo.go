// Package repo holds the entity repositories. Each repository exposes the
// same narrow contract: List newest-first, Get by id, Create with assigned
// id, partial Update through an explicit patch type, and Delete that treats
// a missing row as success. The store is the only authoritative copy; every
// page refetches on render.
package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound signals an absent record, as opposed to a transport or store
// failure. Callers render nothing further in either case.
var ErrNotFound = errors.New("record not found")

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
