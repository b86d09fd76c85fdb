// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/inventory"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

// ErrNotFound is returned when the referenced order does not exist.
var ErrNotFound = errors.New("order not found")

// Service handles order business logic
type Service struct {
	orders    *jsonstore.TypedCollection[Order]
	inventory *inventory.Service
	log       *logrus.Logger
}

// NewService creates a new order service
func NewService(store *jsonstore.Store, inventorySvc *inventory.Service, log *logrus.Logger) *Service {
	return &Service{
		orders:    jsonstore.Collection[Order](store, "orders"),
		inventory: inventorySvc,
		log:       log,
	}
}

// PlaceOrder persists the order and records one exit movement per line
// item through the inventory reconciler, so placed orders visibly reduce
// stock. A line item whose product has meanwhile disappeared is logged and
// skipped rather than failing the whole order.
func (s *Service) PlaceOrder(req *PlaceOrderRequest) (*Order, error) {
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return nil, inventory.ErrInvalidProductID
		}
		if item.Quantity <= 0 {
			return nil, inventory.ErrInvalidQuantity
		}
	}

	var created Order

	err := s.orders.Update(func(items []Order) ([]Order, error) {
		created = Order{
			ID:           jsonstore.NextID(items),
			OrderNumber:  newOrderNumber(),
			CustomerInfo: req.CustomerInfo,
			Items:        req.Items,
			Total:        req.Total,
			UserID:       req.UserID,
			OrderDate:    time.Now().UTC(),
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	for _, item := range req.Items {
		if _, err := s.inventory.RecordOrderExit(item.ProductID, item.Quantity, req.UserID); err != nil {
			if errors.Is(err, inventory.ErrProductNotFound) {
				s.log.WithFields(logrus.Fields{
					"order_id":   created.ID,
					"product_id": item.ProductID,
				}).Warn("Ordered product no longer exists, exit movement skipped")
				continue
			}
			return nil, fmt.Errorf("failed to record order exit: %w", err)
		}
	}

	return &created, nil
}

// GetOrder retrieves a single order by id
func (s *Service) GetOrder(id int) (*Order, error) {
	o, ok, err := s.orders.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

// GetOrders retrieves every order, newest last.
func (s *Service) GetOrders() ([]Order, error) {
	orders, err := s.orders.All()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// newOrderNumber mints a human-quotable order reference.
func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
