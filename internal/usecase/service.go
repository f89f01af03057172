package usecase

import (
	"delivery-backend/internal/data/repository"
	"delivery-backend/pkg/notify"
	"delivery-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Order    OrderService
	Customer CustomerService
	Catalog  CatalogService
}

func NewService(repo *repository.Repository, notifier *notify.Notifier, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, notifier, config, log),
		Order:    NewOrderService(repo, log),
		Customer: NewCustomerService(repo.Customer, log),
		Catalog:  NewCatalogService(repo.Catalog, log),
	}
}
