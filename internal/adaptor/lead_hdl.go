package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"realty-platform/internal/dto/request"
	"realty-platform/internal/usecase"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LeadHandler struct {
	service usecase.LeadService
	log     *zap.Logger
}

func NewLeadHandler(service usecase.LeadService, log *zap.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		log:     log.With(zap.String("handler", "lead")),
	}
}

// GetLeads handles GET /api/leads
func (h *LeadHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	req := request.PaginationFromQuery(query)

	var status *string
	if v := query.Get("status"); v != "" {
		status = &v
	}

	leads, err := h.service.ListLeads(r.Context(), userID, status, req)
	if err != nil {
		h.handleServiceError(w, err, "get leads")
		return
	}

	utils.ResponseSuccess(w, "Leads retrieved successfully", leads)
}

// UpdateLeadStatus handles PUT /api/leads/{id}/status
func (h *LeadHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	leadID := chi.URLParam(r, "id")
	if leadID == "" {
		utils.ResponseBadRequest(w, "Lead ID is required", nil)
		return
	}

	var req request.LeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	lead, err := h.service.UpdateLeadStatus(r.Context(), userID, leadID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update lead status")
		return
	}

	utils.ResponseSuccess(w, "Lead status updated successfully", lead)
}

func (h *LeadHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid lead ID"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
