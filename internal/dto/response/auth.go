package response

import (
	"time"

	"realty-platform/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      entity.UserRole `json:"role"`
}

// MobileLoginResponse carries the legacy mobile token next to the user.
type MobileLoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone,omitempty"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`

	License         *string `json:"license,omitempty"`
	Company         *string `json:"company,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Specialties     *string `json:"specialties,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	NSS             *string `json:"nss,omitempty"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		Role:            user.Role,
		IsActive:        user.IsActive,
		CreatedAt:       user.CreatedAt,
		License:         user.License,
		Company:         user.Company,
		Bio:             user.Bio,
		Specialties:     user.Specialties,
		ExperienceYears: user.ExperienceYears,
		NSS:             user.NSS,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
