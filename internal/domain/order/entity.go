// internal/domain/order/entity.go
package order

import "time"

// CustomerInfo is the checkout form snapshot stored with an order.
type CustomerInfo struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
}

// OrderItem is one purchased line item with its price at order time.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a placed order.
type Order struct {
	ID           int          `json:"id"`
	OrderNumber  string       `json:"orderNumber"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Items        []OrderItem  `json:"items"`
	Total        float64      `json:"total"`
	// UserID is 0 for guest orders; ledger exits then carry the sentinel
	// unknown identity.
	UserID    int       `json:"userId,omitempty"`
	OrderDate time.Time `json:"orderDate"`
}

// GetID implements jsonstore.Identifiable.
func (o Order) GetID() int {
	return o.ID
}

// PlaceOrderRequest represents order placement data
type PlaceOrderRequest struct {
	CustomerInfo CustomerInfo `json:"customerInfo" binding:"required"`
	Items        []OrderItem  `json:"items" binding:"required,min=1"`
	Total        float64      `json:"total"`
	UserID       int          `json:"userId"`
}
