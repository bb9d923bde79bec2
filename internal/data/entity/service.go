package entity

import (
	"github.com/google/uuid"
)

type Service struct {
	BaseNoDelete
	CategoryID  uuid.UUID `db:"category_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	PriceFrom   *float64  `db:"price_from"`
	IsActive    bool      `db:"is_active"`
	IsPopular   bool      `db:"is_popular"`
}
