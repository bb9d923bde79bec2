package request

// SendMessageRequest carries an optional contact override; when present it
// replaces the caller's stored display fields in the message header.
type SendMessageRequest struct {
	ReceiverID string  `json:"receiver_id" validate:"required,uuid"`
	Content    string  `json:"content" validate:"required"`
	Name       *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=15"`
}
