package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"realty-platform/internal/dto/request"
	"realty-platform/internal/usecase"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// GetProperties handles GET /api/properties
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.PaginationFromQuery(query)

	filter := usecase.PropertyListFilter{}
	if v := query.Get("type"); v != "" {
		filter.Type = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("city"); v != "" {
		filter.City = &v
	}
	if v := query.Get("broker_id"); v != "" {
		filter.BrokerID = &v
	}
	if v := query.Get("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := query.Get("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	if v := query.Get("bedrooms"); v != "" {
		if bedrooms, err := strconv.Atoi(v); err == nil {
			filter.Bedrooms = &bedrooms
		}
	}

	properties, err := h.service.ListProperties(r.Context(), filter, req)
	if err != nil {
		h.handleServiceError(w, err, "get properties")
		return
	}

	utils.ResponseSuccess(w, "Properties retrieved successfully", properties)
}

// GetPropertyByID handles GET /api/properties/{id}
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	property, err := h.service.GetProperty(r.Context(), propertyID)
	if err != nil {
		h.handleServiceError(w, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "Property retrieved successfully", property)
}

// CreateProperty handles POST /api/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create property")
		return
	}

	utils.ResponseCreated(w, "Property created successfully", property)
}

// UpdateProperty handles PUT /api/properties/{id}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	var req request.PropertyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), userID, propertyID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "Property updated successfully", property)
}

// DeleteProperty handles DELETE /api/properties/{id}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	if err := h.service.DeleteProperty(r.Context(), userID, propertyID); err != nil {
		h.handleServiceError(w, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "Property deleted successfully", nil)
}

func (h *PropertyHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid property ID"),
		strings.Contains(errMsg, "invalid broker ID"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
