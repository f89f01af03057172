package request

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString accepts either a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number")
	}
	*f = FlexString(n.String())
	return nil
}

// CreateOrderRequest mirrors the dashboard's order form. Optional fields
// fall back to defaults in the order service.
type CreateOrderRequest struct {
	ID              FlexString `json:"id"`
	CustomerName    string     `json:"customerName" validate:"required"`
	CustomerMobile  string     `json:"customerMobile" validate:"required"`
	CustomerEmail   string     `json:"customerEmail" validate:"required"`
	CustomerAddress string     `json:"customerAddress" validate:"required"`
	ProductName     *string    `json:"productName,omitempty"`
	Kgs             *int       `json:"kgs,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	Status          *string    `json:"status,omitempty"`
}
