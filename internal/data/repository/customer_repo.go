package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery-backend/internal/data/entity"
	"delivery-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	CreateIfAbsent(ctx context.Context, customer *entity.Customer) (bool, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	query := `
		SELECT id, name, address, phone, email, created_at
		FROM customers
		WHERE phone = $1
	`

	var c entity.Customer
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.Phone,
		&c.Email,
		&c.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by phone", zap.Error(err), zap.String("phone", phone))
		return nil, fmt.Errorf("find customer by phone %s: %w", phone, err)
	}

	return &c, nil
}

// CreateIfAbsent inserts the customer unless one with the same phone exists.
// It reports whether a row was written; concurrent submissions for the same
// new phone resolve to a single row.
func (r *customerRepository) CreateIfAbsent(ctx context.Context, customer *entity.Customer) (bool, error) {
	query := `
		INSERT INTO customers (name, address, phone, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone) DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		customer.Name,
		customer.Address,
		customer.Phone,
		customer.Email,
	).Scan(&customer.ID, &customer.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to create customer", zap.Error(err), zap.String("phone", customer.Phone))
		return false, fmt.Errorf("create customer %s: %w", customer.Phone, err)
	}

	return true, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, address, phone, email, created_at
		FROM customers
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all customers", zap.Error(err))
		return nil, fmt.Errorf("find all customers: %w", err)
	}
	defer rows.Close()

	customers := []*entity.Customer{}
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}
