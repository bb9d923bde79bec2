package entity

import (
	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeLand       PropertyType = "LAND"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "AVAILABLE"
	PropertyStatusReserved  PropertyStatus = "RESERVED"
	PropertyStatusSold      PropertyStatus = "SOLD"
)

type Property struct {
	Base
	BrokerID    uuid.UUID      `db:"broker_id"`
	Title       string         `db:"title"`
	Description *string        `db:"description"`
	Type        PropertyType   `db:"type"`
	Status      PropertyStatus `db:"status"`
	Price       float64        `db:"price"`
	Currency    string         `db:"currency"`
	Bedrooms    int            `db:"bedrooms"`
	Bathrooms   int            `db:"bathrooms"`
	AreaM2      float64        `db:"area_m2"`
	Address     *string        `db:"address"`
	City        *string        `db:"city"`
	State       *string        `db:"state"`
	Amenities   []string       `db:"amenities"`
	Images      []string       `db:"images"`
}
