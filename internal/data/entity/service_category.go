package entity

type ServiceCategory struct {
	BaseNoDelete
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	Description *string `db:"description"`
	Icon        *string `db:"icon"`
}
