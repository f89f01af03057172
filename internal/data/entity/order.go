package entity

import "time"

const (
	DefaultProductName = "Chicken"
	DefaultKgs         = 1
	OrderStatusPending = "Pending"
)

// Order copies the customer contact fields at creation time; there is no
// foreign key to customers.
type Order struct {
	ID              string    `db:"id"`
	CustomerName    string    `db:"customer_name"`
	CustomerMobile  string    `db:"customer_mobile"`
	CustomerEmail   string    `db:"customer_email"`
	CustomerAddress string    `db:"customer_address"`
	ProductName     string    `db:"product_name"`
	Kgs             int       `db:"kgs"`
	Price           float64   `db:"price"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}
