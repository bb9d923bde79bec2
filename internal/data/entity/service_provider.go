package entity

type ServiceProvider struct {
	BaseNoDelete
	Name      string  `db:"name"`
	Specialty string  `db:"specialty"`
	Phone     *string `db:"phone"`
	Email     *string `db:"email"`
	Rating    float64 `db:"rating"`
	IsActive  bool    `db:"is_active"`
}
