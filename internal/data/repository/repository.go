package repository

import (
	"errors"

	"delivery-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolation = "23505"

type Repository struct {
	User     UserRepository
	Order    OrderRepository
	Customer CustomerRepository
	Catalog  CatalogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Catalog:  NewCatalogRepository(db, log),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
