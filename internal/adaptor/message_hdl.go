package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"realty-platform/internal/dto/request"
	"realty-platform/internal/dto/response"
	"realty-platform/internal/usecase"
	"realty-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// GetMessages handles GET /api/messages and GET /api/chat
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	messages, err := h.service.ListMessages(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get messages")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved successfully", messages)
}

// SendMessage handles POST /api/messages and POST /api/chat
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	message, err := h.service.SendMessage(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "send message")
		return
	}

	utils.ResponseCreated(w, "Message sent successfully", message)
}

// GetThread handles GET /api/messages/{userId} and GET /api/chat/{userId}.
// Fetching a thread marks the unread messages in it as read.
func (h *MessageHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	otherID, err := utils.ParseUUID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	messages, err := h.service.GetThread(r.Context(), userID, otherID)
	if err != nil {
		h.handleServiceError(w, err, "get thread")
		return
	}

	utils.ResponseSuccess(w, "Conversation retrieved successfully", messages)
}

// GetUnreadCount handles GET /api/messages/unread-count
func (h *MessageHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get unread count")
		return
	}

	utils.ResponseSuccess(w, "Unread count retrieved successfully", response.UnreadCountResponse{
		UnreadCount: count,
	})
}

func (h *MessageHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid receiver ID"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
