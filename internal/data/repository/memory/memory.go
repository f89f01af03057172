// Package memory implements the repository interfaces in process memory.
// It backs STORAGE_DRIVER=memory and the service and handler tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"delivery-backend/internal/data/entity"
	"delivery-backend/internal/data/repository"
)

// NewRepository returns a Repository whose state lives until the process exits.
func NewRepository() *repository.Repository {
	return &repository.Repository{
		User:     NewUserRepository(),
		Order:    NewOrderRepository(),
		Customer: NewCustomerRepository(),
		Catalog:  NewCatalogRepository(),
	}
}

// ==================== USERS ====================

type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	byKey  map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byKey: make(map[string]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.OldPasswords = append([]string{}, u.OldPasswords...)
	if u.ResetOTP != nil {
		otp := *u.ResetOTP
		c.ResetOTP = &otp
	}
	return &c
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[user.Identifier]; ok {
		return fmt.Errorf("create user %s: %w", user.Identifier, repository.ErrDuplicate)
	}

	r.nextID++
	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.OldPasswords == nil {
		user.OldPasswords = []string{}
	}
	r.byKey[user.Identifier] = cloneUser(user)
	return nil
}

func (r *UserRepository) FindByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byKey[identifier]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *UserRepository) byID(id int64) *entity.User {
	for _, u := range r.byKey {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (r *UserRepository) SetResetOTP(_ context.Context, id int64, otp *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.byID(id)
	if u == nil {
		return fmt.Errorf("user %d not found", id)
	}
	if otp == nil {
		u.ResetOTP = nil
	} else {
		v := *otp
		u.ResetOTP = &v
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id int64, passwordHash string, oldPasswords []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.byID(id)
	if u == nil {
		return fmt.Errorf("user %d not found", id)
	}
	u.PasswordHash = passwordHash
	u.OldPasswords = append([]string{}, oldPasswords...)
	u.UpdatedAt = time.Now()
	return nil
}

// ==================== ORDERS ====================

type OrderRepository struct {
	mu     sync.Mutex
	orders []entity.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == order.ID {
			return fmt.Errorf("create order %s: %w", order.ID, repository.ErrDuplicate)
		}
	}
	order.CreatedAt = time.Now()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *OrderRepository) FindAll(_ context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Order, 0, len(r.orders))
	for i := range r.orders {
		o := r.orders[i]
		out = append(out, &o)
	}
	return out, nil
}

// ==================== CUSTOMERS ====================

type CustomerRepository struct {
	mu        sync.Mutex
	nextID    int64
	customers []entity.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) FindByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.Phone == phone {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) CreateIfAbsent(_ context.Context, customer *entity.Customer) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.Phone == customer.Phone {
			return false, nil
		}
	}
	r.nextID++
	customer.ID = r.nextID
	customer.CreatedAt = time.Now()
	r.customers = append(r.customers, *customer)
	return true, nil
}

func (r *CustomerRepository) FindAll(_ context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Customer, 0, len(r.customers))
	for i := range r.customers {
		c := r.customers[i]
		out = append(out, &c)
	}
	return out, nil
}

// ==================== CATALOG ====================

type CatalogRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[entity.CatalogKind][]json.RawMessage
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{items: make(map[entity.CatalogKind][]json.RawMessage)}
}

func (r *CatalogRepository) List(_ context.Context, kind entity.CatalogKind) ([]json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]json.RawMessage{}, r.items[kind]...), nil
}

func (r *CatalogRepository) Append(_ context.Context, kind entity.CatalogKind, payload json.RawMessage) (*entity.CatalogItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := append(json.RawMessage{}, payload...)
	r.items[kind] = append(r.items[kind], stored)
	r.nextID++

	item := &entity.CatalogItem{Kind: kind, Payload: stored}
	item.ID = r.nextID
	item.CreatedAt = time.Now()
	return item, nil
}

func (r *CatalogRepository) Count(_ context.Context, kind entity.CatalogKind) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.items[kind])), nil
}
