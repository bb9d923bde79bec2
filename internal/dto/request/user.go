package request

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`

	// Broker profile
	License         *string `json:"license,omitempty"`
	Company         *string `json:"company,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Specialties     *string `json:"specialties,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0,max=80"`

	// Client profile
	NSS *string `json:"nss,omitempty" validate:"omitempty,len=11"`
}

// AdminCreateUserRequest also allows creating ADMIN accounts, unlike public
// registration.
type AdminCreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role" validate:"required,oneof=ADMIN BROKER CLIENT"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
}
