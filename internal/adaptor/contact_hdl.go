package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"realty-platform/internal/dto/request"
	"realty-platform/internal/usecase"
	"realty-platform/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// SubmitContact handles POST /api/contact. No authentication; this is the
// public lead-capture form.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	lead, err := h.service.SubmitContact(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit contact")
		return
	}

	utils.ResponseCreated(w, "Contact request submitted successfully", lead)
}

func (h *ContactHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid broker"),
		strings.Contains(errMsg, "invalid property ID"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
