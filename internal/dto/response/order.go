package response

import "delivery-backend/internal/data/entity"

type OrderResponse struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customerName"`
	CustomerMobile  string  `json:"customerMobile"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerAddress string  `json:"customerAddress"`
	ProductName     string  `json:"productName"`
	Kgs             int     `json:"kgs"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
}

type CreateOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func OrderToResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerMobile:  o.CustomerMobile,
		CustomerEmail:   o.CustomerEmail,
		CustomerAddress: o.CustomerAddress,
		ProductName:     o.ProductName,
		Kgs:             o.Kgs,
		Price:           o.Price,
		Status:          o.Status,
	}
}

func CustomerToResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}
