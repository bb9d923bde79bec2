package adaptor

import (
	"realty-platform/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	Contact  *ContactHandler
	Message  *MessageHandler
	Lead     *LeadHandler
	Catalog  *CatalogHandler
	Admin    *AdminHandler
	Credit   *CreditHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Property: NewPropertyHandler(service.Property, log),
		Contact:  NewContactHandler(service.Contact, log),
		Message:  NewMessageHandler(service.Message, log),
		Lead:     NewLeadHandler(service.Lead, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Admin:    NewAdminHandler(service.Admin, log),
		Credit:   NewCreditHandler(service.Credit, log),
	}
}
