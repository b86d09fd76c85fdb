// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/product"
)

var (
	// ErrProductUnavailable is returned when the product does not exist.
	ErrProductUnavailable = errors.New("product not found")
	// ErrInsufficientStock is returned when the requested quantity exceeds
	// the product's current stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrItemNotInCart is returned when updating a line the cart lacks.
	ErrItemNotInCart = errors.New("item not in cart")
)

// Service handles guest cart business logic. Carts are session-scoped and
// live in Redis with a TTL; nothing is persisted to the JSON store until an
// order is placed.
type Service struct {
	redisClient *redis.Client
	products    *product.Service
	config      *config.Config
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, productSvc *product.Service, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		products:    productSvc,
		config:      cfg,
	}
}

// GetCart retrieves the session's cart, creating an empty one on first use.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(sessionCart), nil
}

// AddItem adds a product to the cart, snapshotting its current price. Stock
// is checked against the product's denormalized quantity at add time.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddToCartRequest) (*CartResponse, error) {
	p, err := s.products.GetProduct(req.ProductID)
	if err != nil {
		return nil, ErrProductUnavailable
	}

	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	for i, item := range sessionCart.Items {
		if item.ProductID == req.ProductID {
			quantity += item.Quantity
			if quantity > p.Quantity {
				return nil, ErrInsufficientStock
			}
			sessionCart.Items[i].Quantity = quantity
			sessionCart.Items[i].Price = p.Price
			return s.store(ctx, sessionCart)
		}
	}

	if quantity > p.Quantity {
		return nil, ErrInsufficientStock
	}

	sessionCart.Items = append(sessionCart.Items, SessionCartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  req.Quantity,
		Price:     p.Price,
		AddedAt:   time.Now().UTC(),
	})
	return s.store(ctx, sessionCart)
}

// UpdateItem changes a line's quantity; zero removes the line.
func (s *Service) UpdateItem(ctx context.Context, sessionID string, productID int, req *UpdateCartItemRequest) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i, item := range sessionCart.Items {
		if item.ProductID != productID {
			continue
		}

		if req.Quantity == 0 {
			sessionCart.Items = append(sessionCart.Items[:i], sessionCart.Items[i+1:]...)
			return s.store(ctx, sessionCart)
		}

		p, err := s.products.GetProduct(productID)
		if err != nil {
			return nil, ErrProductUnavailable
		}
		if req.Quantity > p.Quantity {
			return nil, ErrInsufficientStock
		}

		sessionCart.Items[i].Quantity = req.Quantity
		return s.store(ctx, sessionCart)
	}

	return nil, ErrItemNotInCart
}

// RemoveItem drops a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int) (*CartResponse, error) {
	return s.UpdateItem(ctx, sessionID, productID, &UpdateCartItemRequest{Quantity: 0})
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*SessionCart, error) {
	data, err := s.redisClient.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &SessionCart{
			SessionID: sessionID,
			Items:     []SessionCartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var sessionCart SessionCart
	if err := json.Unmarshal([]byte(data), &sessionCart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &sessionCart, nil
}

func (s *Service) store(ctx context.Context, sessionCart *SessionCart) (*CartResponse, error) {
	sessionCart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(sessionCart)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.redisClient.Set(ctx, cartKey(sessionCart.SessionID), data, s.config.Cart.SessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return s.respond(sessionCart), nil
}

func (s *Service) respond(sessionCart *SessionCart) *CartResponse {
	totals := CartTotals{ItemCount: len(sessionCart.Items)}
	for _, item := range sessionCart.Items {
		totals.TotalQuantity += item.Quantity
		totals.TotalAmount += float64(item.Quantity) * item.Price
	}

	return &CartResponse{
		SessionID: sessionCart.SessionID,
		Items:     sessionCart.Items,
		Totals:    totals,
		CreatedAt: sessionCart.CreatedAt,
		UpdatedAt: sessionCart.UpdatedAt,
	}
}

func cartKey(sessionID string) string {
	return "cart:session:" + sessionID
}
