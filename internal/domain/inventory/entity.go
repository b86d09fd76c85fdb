// internal/domain/inventory/entity.go
package inventory

import "time"

// MovementType is the closed set of ledger movement kinds. Anything outside
// the two constants is rejected at the boundary, so a typo can never create
// a third, unhandled category.
type MovementType string

const (
	MovementTypeEntry MovementType = "entry" // stock increase
	MovementTypeExit  MovementType = "exit"  // stock decrease
)

// IsValid reports whether t is one of the two allowed movement types.
func (t MovementType) IsValid() bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}

// Sign returns the movement type's effect on stock: +1 for entries, -1 for
// exits.
func (t MovementType) Sign() int {
	if t == MovementTypeEntry {
		return 1
	}
	return -1
}

// Ledger entry notes written by the automatic recording paths.
const (
	NoteInitialStock = "Initial stock"
	NoteStockUpdate  = "Stock update"
	NoteOrder        = "Order"
)

// Movement is one signed change to a product's stock. The ledger of
// movements is the append-mostly source of truth for stock history; the
// product's denormalized quantity must always equal the ledger's signed sum.
type Movement struct {
	ID        int          `json:"id"`
	ProductID int          `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	// Value is the acquisition cost; present only on entries.
	Value  *float64  `json:"value,omitempty"`
	Date   time.Time `json:"date"`
	UserID int       `json:"userId"`
	Notes  string    `json:"notes"`
}

// GetID implements jsonstore.Identifiable.
func (m Movement) GetID() int {
	return m.ID
}

// Effect is the movement's signed contribution to the product's quantity.
func (m Movement) Effect() int {
	return m.Quantity * m.Type.Sign()
}

// RecordMovementRequest represents a manual ledger entry
type RecordMovementRequest struct {
	ProductID int          `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Value     *float64     `json:"value"`
	UserID    int          `json:"userId"`
	Notes     string       `json:"notes"`
}

// UpdateMovementRequest represents an edit to an existing ledger entry
type UpdateMovementRequest struct {
	Type     MovementType `json:"type"`
	Quantity int          `json:"quantity"`
	Value    *float64     `json:"value"`
	Notes    string       `json:"notes"`
}
