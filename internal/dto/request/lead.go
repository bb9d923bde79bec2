package request

type LeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONTACTED QUALIFIED CLOSED"`
}
