package request

// ContactRequest is the anonymous lead-capture form. Email or phone is
// required; that rule lives in the usecase because validator tags cannot
// express either-of.
type ContactRequest struct {
	BrokerID      string  `json:"broker_id" validate:"required,uuid"`
	PropertyID    *string `json:"property_id,omitempty" validate:"omitempty,uuid"`
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Message       *string `json:"message,omitempty" validate:"omitempty,max=2000"`
	ContactMethod *string `json:"contact_method,omitempty" validate:"omitempty,oneof=EMAIL PHONE WHATSAPP"`
	VisitDate     *string `json:"visit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	VisitTime     *string `json:"visit_time,omitempty" validate:"omitempty,datetime=15:04"`
}
