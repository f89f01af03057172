package repository

import (
	"context"
	"fmt"

	"delivery-backend/internal/data/entity"
	"delivery-backend/pkg/database"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindAll(ctx context.Context) ([]*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, customer_mobile, customer_email,
		                    customer_address, product_name, kgs, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		order.ID,
		order.CustomerName,
		order.CustomerMobile,
		order.CustomerEmail,
		order.CustomerAddress,
		order.ProductName,
		order.Kgs,
		order.Price,
		order.Status,
	).Scan(&order.CreatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("create order %s: %w", order.ID, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_id", order.ID),
		)
		return fmt.Errorf("create order %s: %w", order.ID, err)
	}

	return nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_name, customer_mobile, customer_email, customer_address,
		       product_name, kgs, price, status, created_at
		FROM orders
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	orders := []*entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerMobile,
			&o.CustomerEmail,
			&o.CustomerAddress,
			&o.ProductName,
			&o.Kgs,
			&o.Price,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
