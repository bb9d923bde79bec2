package entity

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleBroker UserRole = "BROKER"
	RoleClient UserRole = "CLIENT"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`

	// Broker profile
	License         *string `db:"license"`
	Company         *string `db:"company"`
	Bio             *string `db:"bio"`
	Specialties     *string `db:"specialties"`
	ExperienceYears *int    `db:"experience_years"`

	// Client profile
	NSS *string `db:"nss"`
}

func (u *User) IsBroker() bool {
	return u.Role == RoleBroker
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
