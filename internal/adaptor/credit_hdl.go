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

type CreditHandler struct {
	service usecase.CreditService
	log     *zap.Logger
}

func NewCreditHandler(service usecase.CreditService, log *zap.Logger) *CreditHandler {
	return &CreditHandler{
		service: service,
		log:     log.With(zap.String("handler", "credit")),
	}
}

// Simulate handles POST /api/credit/simulate
func (h *CreditHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req request.CreditSimulationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	result, err := h.service.Simulate(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ResponseBadRequest(w, err.Error(), err)
			return
		}
		h.log.Error("Failed to simulate credit", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Simulation completed successfully", result)
}
