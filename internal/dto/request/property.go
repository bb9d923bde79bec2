package request

type PropertyRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Type        string   `json:"type" validate:"required,oneof=HOUSE APARTMENT LAND COMMERCIAL"`
	Status      string   `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Currency    string   `json:"currency" validate:"omitempty,oneof=MXN USD"`
	Bedrooms    int      `json:"bedrooms" validate:"omitempty,min=0,max=50"`
	Bathrooms   int      `json:"bathrooms" validate:"omitempty,min=0,max=50"`
	AreaM2      float64  `json:"area_m2" validate:"omitempty,gt=0"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	City        *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string  `json:"state,omitempty" validate:"omitempty,max=100"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty" validate:"dive,url"`
}

type PropertyUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=HOUSE APARTMENT LAND COMMERCIAL"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,oneof=MXN USD"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Bathrooms   *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0,max=50"`
	AreaM2      *float64 `json:"area_m2,omitempty" validate:"omitempty,gt=0"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	City        *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string  `json:"state,omitempty" validate:"omitempty,max=100"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty" validate:"dive,url"`
}
