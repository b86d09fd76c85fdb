// internal/domain/cart/entity.go
package cart

import "time"

// SessionCart represents a guest cart session stored in Redis.
type SessionCart struct {
	SessionID string            `json:"sessionId"`
	Items     []SessionCartItem `json:"items"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// SessionCartItem is one cart line with the price captured at add time.
type SessionCartItem struct {
	ProductID int       `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"addedAt"`
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	ItemCount     int     `json:"itemCount"`     // number of unique items
	TotalQuantity int     `json:"totalQuantity"` // sum of all quantities
	TotalAmount   float64 `json:"totalAmount"`
}

// CartResponse is a cart with its computed totals.
type CartResponse struct {
	SessionID string            `json:"sessionId"`
	Items     []SessionCartItem `json:"items"`
	Totals    CartTotals        `json:"totals"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}
