package request

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role" validate:"required,oneof=BROKER CLIENT"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`

	// Broker profile
	License         *string `json:"license,omitempty"`
	Company         *string `json:"company,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Specialties     *string `json:"specialties,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0,max=80"`

	// Client profile
	NSS *string `json:"nss,omitempty" validate:"omitempty,len=11"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
