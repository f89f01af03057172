package usecase

import (
	"context"
	"errors"
	"fmt"

	"delivery-backend/internal/data/entity"
	"delivery-backend/internal/data/repository"
	"delivery-backend/internal/dto/request"
	"delivery-backend/internal/dto/response"
	"delivery-backend/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context) ([]response.OrderResponse, error)
}

type orderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	log       *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		orders:    repo.Order,
		customers: repo.Customer,
		log:       log.With(zap.String("service", "order")),
	}
}

// CreateOrder stores the order and then registers the customer by phone if
// this is the first order from that number. The two writes are independent:
// a failure after the order insert leaves the order in place.
func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newError(ErrValidation, "Validation failed: "+utils.FormatValidationErrors(errs))
	}

	order := &entity.Order{
		ID:              string(req.ID),
		CustomerName:    req.CustomerName,
		CustomerMobile:  req.CustomerMobile,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		ProductName:     entity.DefaultProductName,
		Kgs:             entity.DefaultKgs,
		Price:           0,
		Status:          entity.OrderStatusPending,
	}
	if order.ID == "" {
		order.ID = utils.GenerateOrderID()
	}
	if req.ProductName != nil {
		order.ProductName = *req.ProductName
	}
	if req.Kgs != nil {
		order.Kgs = *req.Kgs
	}
	if req.Price != nil {
		order.Price = *req.Price
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, fmt.Sprintf("Order %s already exists", order.ID))
		}
		return nil, wrapError(ErrInternal, err.Error(), err)
	}

	if err := s.ensureCustomer(ctx, order); err != nil {
		s.log.Error("Order stored without customer",
			zap.Error(err),
			zap.String("order_id", order.ID),
			zap.String("phone", order.CustomerMobile))
		return nil, wrapError(ErrInternal, err.Error(), err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("product", order.ProductName),
		zap.Int("kgs", order.Kgs))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) ensureCustomer(ctx context.Context, order *entity.Order) error {
	existing, err := s.customers.FindByPhone(ctx, order.CustomerMobile)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	created, err := s.customers.CreateIfAbsent(ctx, &entity.Customer{
		Name:    order.CustomerName,
		Address: order.CustomerAddress,
		Phone:   order.CustomerMobile,
		Email:   order.CustomerEmail,
	})
	if err != nil {
		return err
	}
	if created {
		s.log.Info("Customer created", zap.String("phone", order.CustomerMobile))
	}
	return nil
}

func (s *orderService) GetOrders(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.OrderToResponse(o))
	}
	return out, nil
}
