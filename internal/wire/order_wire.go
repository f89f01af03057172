package wire

import (
	"delivery-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	r.Get("/api/orders", orderHandler.GetOrders)
	r.Post("/api/orders", orderHandler.CreateOrder)
}

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler) {
	r.Get("/api/customers", customerHandler.GetCustomers)
}
