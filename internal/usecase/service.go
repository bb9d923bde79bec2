package usecase

import (
	"realty-platform/internal/data/repository"
	"realty-platform/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Property PropertyService
	Contact  ContactService
	Message  MessageService
	Lead     LeadService
	Catalog  CatalogService
	Admin    AdminService
	Credit   CreditService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Property: NewPropertyService(repo, log),
		Contact:  NewContactService(repo, log),
		Message:  NewMessageService(repo, log),
		Lead:     NewLeadService(repo, log),
		Catalog:  NewCatalogService(repo, log),
		Admin:    NewAdminService(repo, log),
		Credit:   NewCreditService(log),
	}
}
