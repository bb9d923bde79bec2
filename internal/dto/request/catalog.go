package request

type ServiceCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Slug        string  `json:"slug" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=100"`
}

type ServiceRequest struct {
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required,min=2,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	PriceFrom   *float64 `json:"price_from,omitempty" validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
	IsPopular   *bool    `json:"is_popular,omitempty"`
}

type ServiceProviderRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=150"`
	Specialty string  `json:"specialty" validate:"required,min=2,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Rating    float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type ProviderActiveRequest struct {
	IsActive bool `json:"is_active"`
}
