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

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetServices handles GET /api/services
func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := usecase.ServiceListFilter{}
	if v := query.Get("category_id"); v != "" {
		filter.CategoryID = &v
	}
	if v := query.Get("category"); v != "" {
		filter.CategorySlug = &v
	}
	if v := query.Get("popular"); v != "" {
		if popular, err := strconv.ParseBool(v); err == nil {
			filter.Popular = &popular
		}
	}

	services, err := h.service.ListServices(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "Services retrieved successfully", services)
}

// GetCategories handles GET /api/services/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// GetProviders handles GET /api/providers
func (h *CatalogHandler) GetProviders(w http.ResponseWriter, r *http.Request) {
	var specialty *string
	if v := r.URL.Query().Get("specialty"); v != "" {
		specialty = &v
	}

	providers, err := h.service.ListProviders(r.Context(), specialty)
	if err != nil {
		h.handleServiceError(w, err, "get providers")
		return
	}

	utils.ResponseSuccess(w, "Providers retrieved successfully", providers)
}

// CreateCategory handles POST /api/admin/service-categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// CreateService handles POST /api/admin/services
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	service, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create service")
		return
	}

	utils.ResponseCreated(w, "Service created successfully", service)
}

// CreateProvider handles POST /api/admin/providers
func (h *CatalogHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceProviderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	provider, err := h.service.CreateProvider(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create provider")
		return
	}

	utils.ResponseCreated(w, "Provider created successfully", provider)
}

// SetProviderActive handles PUT /api/admin/providers/{id}/active
func (h *CatalogHandler) SetProviderActive(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")
	if providerID == "" {
		utils.ResponseBadRequest(w, "Provider ID is required", nil)
		return
	}

	var req request.ProviderActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	provider, err := h.service.SetProviderActive(r.Context(), providerID, req.IsActive)
	if err != nil {
		h.handleServiceError(w, err, "set provider active")
		return
	}

	utils.ResponseSuccess(w, "Provider updated successfully", provider)
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid category ID"),
		strings.Contains(errMsg, "invalid provider ID"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
