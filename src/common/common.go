package common

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record does not exist")
	ErrCreationFailed = errors.New("record could not be listed")
	ErrUpdateFailed   = errors.New("record could not be updated")
	ErrDeleteFailed   = errors.New("record could not be deleted")
)

// Queries is the read side of the directory. The store handle is injected so
// tests can swap in their own database.
type Queries struct {
	db *gorm.DB
}

func NewQueries(db *gorm.DB) *Queries {
	return &Queries{db: db}
}

// Mutations is the write side. Every operation runs inside one transaction
// and rolls back on any store failure.
type Mutations struct {
	db *gorm.DB
}

func NewMutations(db *gorm.DB) *Mutations {
	return &Mutations{db: db}
}
