// internal/domain/inventory/service.go
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

// Validation and lookup errors reported by the reconciler. Validation always
// happens before any mutation; a rejected request leaves both the ledger and
// the product untouched.
var (
	ErrInvalidProductID = errors.New("product id must be a valid number")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number")
	ErrInvalidType      = errors.New(`movement type must be "entry" or "exit"`)
	ErrInvalidValue     = errors.New("entries require a cost value of zero or more")
	ErrProductNotFound  = errors.New("product not found")
	ErrMovementNotFound = errors.New("movement not found")
)

// IsValidationError reports whether err is one of the reconciler's input
// validation failures (as opposed to a lookup or persistence failure).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidProductID) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidValue)
}

// Service is the inventory ledger reconciler. It owns the movement ledger
// and keeps each product's denormalized quantity equal to the ledger's
// signed sum across every recording path.
type Service struct {
	movements *jsonstore.TypedCollection[Movement]
	products  *jsonstore.TypedCollection[product.Product]
	log       *logrus.Logger
}

// NewService creates a new inventory service
func NewService(store *jsonstore.Store, log *logrus.Logger) *Service {
	return &Service{
		movements: jsonstore.Collection[Movement](store, "inventory-movements"),
		products:  jsonstore.Collection[product.Product](store, "products"),
		log:       log,
	}
}

// RecordMovement validates and records a manual ledger entry, then adjusts
// the product's quantity by the movement's signed effect. The product's
// existence is confirmed before anything is written, and a failed product
// write removes the just-appended ledger entry again, so a stored movement
// always has a live, adjusted product behind it.
func (s *Service) RecordMovement(req *RecordMovementRequest) (*Movement, error) {
	if req.ProductID <= 0 {
		return nil, ErrInvalidProductID
	}
	if err := validateMovementFields(req.Type, req.Quantity, req.Value); err != nil {
		return nil, err
	}

	if _, ok, err := s.products.Get(req.ProductID); err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	} else if !ok {
		return nil, ErrProductNotFound
	}

	movement := Movement{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Date:      time.Now().UTC(),
		UserID:    req.UserID,
		Notes:     req.Notes,
	}
	if req.Type == MovementTypeEntry {
		movement.Value = req.Value
	}

	if err := s.appendMovement(&movement); err != nil {
		return nil, err
	}

	if err := s.adjustProductQuantity(req.ProductID, movement.Effect()); err != nil {
		// Compensate: take the ledger entry back out so the invariant
		// holds even on a partial failure.
		s.removeMovement(movement.ID)
		return nil, err
	}

	return &movement, nil
}

// UpdateMovement edits an existing ledger entry and applies the difference
// between its old and new effect to the product. The adjustment is
// incremental: editing entry,5 into exit,3 moves the product by -8.
func (s *Service) UpdateMovement(id int, req *UpdateMovementRequest) (*Movement, error) {
	if err := validateMovementFields(req.Type, req.Quantity, req.Value); err != nil {
		return nil, err
	}

	var (
		previous Movement
		updated  Movement
	)

	err := s.movements.Update(func(items []Movement) ([]Movement, error) {
		idx := -1
		for i, m := range items {
			if m.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, ErrMovementNotFound
		}

		previous = items[idx]

		next := previous
		next.Type = req.Type
		next.Quantity = req.Quantity
		next.Value = nil
		if req.Type == MovementTypeEntry {
			next.Value = req.Value
		}
		next.Notes = req.Notes
		next.Date = time.Now().UTC() // edits refresh the timestamp

		items[idx] = next
		updated = next
		return items, nil
	})
	if err != nil {
		if errors.Is(err, ErrMovementNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update movement: %w", err)
	}

	delta := updated.Effect() - previous.Effect()

	if _, ok, err := s.products.Get(previous.ProductID); err != nil {
		s.restoreMovement(previous)
		return nil, fmt.Errorf("failed to check product: %w", err)
	} else if !ok {
		// The movement outlived its product. The edit stands; there is no
		// quantity left to adjust.
		s.log.WithFields(logrus.Fields{
			"movement_id": id,
			"product_id":  previous.ProductID,
		}).Warn("Movement edited for a deleted product, quantity adjustment skipped")
		return &updated, nil
	}

	if delta != 0 {
		if err := s.adjustProductQuantity(previous.ProductID, delta); err != nil {
			s.restoreMovement(previous)
			return nil, err
		}
	}

	return &updated, nil
}

// RecordInitialStock writes the opening ledger entry for a newly created
// product. Products created without stock or without an owner get no entry;
// that is a silent skip, not an error. The product's stored quantity already
// reflects the initial value, so nothing is adjusted here.
func (s *Service) RecordInitialStock(p product.Product) error {
	if p.Quantity <= 0 || p.OwnerID == 0 {
		return nil
	}

	movement := Movement{
		ProductID: p.ID,
		Type:      MovementTypeEntry,
		Quantity:  p.Quantity,
		Date:      time.Now().UTC(),
		UserID:    p.OwnerID,
		Notes:     NoteInitialStock,
	}
	return s.appendMovement(&movement)
}

// ReconcileQuantityChange records the ledger entry matching a direct product
// quantity edit. The merged product record is already persisted by the
// caller; only the audit entry is written here. When the update payload
// carries no owner the quantity still changed but no entry may be recorded.
// That divergence between ledger and stock is logged rather than hidden.
func (s *Service) ReconcileQuantityChange(productID, oldQuantity, newQuantity int, ownerID *int) error {
	if newQuantity == oldQuantity {
		return nil
	}

	if ownerID == nil {
		s.log.WithFields(logrus.Fields{
			"product_id":   productID,
			"old_quantity": oldQuantity,
			"new_quantity": newQuantity,
		}).Warn("Product quantity changed without owner, no ledger entry recorded")
		return nil
	}

	movement := Movement{
		ProductID: productID,
		Date:      time.Now().UTC(),
		UserID:    *ownerID,
		Notes:     NoteStockUpdate,
	}

	if delta := newQuantity - oldQuantity; delta > 0 {
		movement.Type = MovementTypeEntry
		movement.Quantity = delta
	} else {
		movement.Type = MovementTypeExit
		movement.Quantity = -delta
	}

	return s.appendMovement(&movement)
}

// RecordOrderExit records the exit for one order line item through the same
// path as manual movements, so an order visibly reduces stock.
func (s *Service) RecordOrderExit(productID, quantity, userID int) (*Movement, error) {
	return s.RecordMovement(&RecordMovementRequest{
		ProductID: productID,
		Type:      MovementTypeExit,
		Quantity:  quantity,
		UserID:    userID,
		Notes:     NoteOrder,
	})
}

// GetMovements returns a product's ledger history in insertion order. A
// product with no movements yields an empty list.
func (s *Service) GetMovements(productID int) ([]Movement, error) {
	movements, err := s.movements.Where(func(m Movement) bool { return m.ProductID == productID })
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve movements: %w", err)
	}
	return movements, nil
}

// LedgerQuantity folds a product's ledger into its derived current stock.
// This is the authoritative cross-check for the denormalized quantity on the
// product record.
func (s *Service) LedgerQuantity(productID int) (int, error) {
	movements, err := s.GetMovements(productID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, m := range movements {
		total += m.Effect()
	}
	return total, nil
}

func validateMovementFields(t MovementType, quantity int, value *float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !t.IsValid() {
		return ErrInvalidType
	}
	if t == MovementTypeEntry && (value == nil || *value < 0) {
		return ErrInvalidValue
	}
	return nil
}

func (s *Service) appendMovement(m *Movement) error {
	err := s.movements.Update(func(items []Movement) ([]Movement, error) {
		m.ID = jsonstore.NextID(items)
		return append(items, *m), nil
	})
	if err != nil {
		return fmt.Errorf("failed to record movement: %w", err)
	}
	return nil
}

func (s *Service) adjustProductQuantity(productID, delta int) error {
	err := s.products.Update(func(items []product.Product) ([]product.Product, error) {
		for i := range items {
			if items[i].ID == productID {
				items[i].Quantity += delta
				return items, nil
			}
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to adjust product quantity: %w", err)
	}
	return nil
}

func (s *Service) removeMovement(id int) {
	err := s.movements.Update(func(items []Movement) ([]Movement, error) {
		kept := items[:0]
		for _, m := range items {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		return kept, nil
	})
	if err != nil {
		s.log.WithError(err).WithField("movement_id", id).Error("Failed to roll back ledger entry")
	}
}

func (s *Service) restoreMovement(previous Movement) {
	err := s.movements.Update(func(items []Movement) ([]Movement, error) {
		for i := range items {
			if items[i].ID == previous.ID {
				items[i] = previous
				return items, nil
			}
		}
		return items, nil
	})
	if err != nil {
		s.log.WithError(err).WithField("movement_id", previous.ID).Error("Failed to roll back movement edit")
	}
}
