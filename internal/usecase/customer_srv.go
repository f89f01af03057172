package usecase

import (
	"context"

	"delivery-backend/internal/data/repository"
	"delivery-backend/internal/dto/response"

	"go.uber.org/zap"
)

type CustomerService interface {
	GetCustomers(ctx context.Context) ([]response.CustomerResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
	log       *zap.Logger
}

func NewCustomerService(customers repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customers: customers,
		log:       log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetCustomers(ctx context.Context) ([]response.CustomerResponse, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, response.CustomerToResponse(c))
	}
	return out, nil
}
