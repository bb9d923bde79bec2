package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID  `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type BaseNoDelete struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// NewBase stamps a fresh ID with matching create/update times.
func NewBase() Base {
	now := time.Now()
	return Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func NewBaseNoDelete() BaseNoDelete {
	now := time.Now()
	return BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func NewBaseSimple() BaseSimple {
	return BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}
}
