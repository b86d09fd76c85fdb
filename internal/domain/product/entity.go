// internal/domain/product/entity.go
package product

// Brand is the brand descriptor embedded in a product record.
type Brand struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Product represents a catalog product. Quantity is the denormalized cache
// of the inventory ledger's signed total for this product; the reconciler
// keeps the two in step.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Code        string   `json:"code,omitempty"`
	Model       string   `json:"model,omitempty"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	ImageURL    []string `json:"imageUrl,omitempty"`
	Brand       Brand    `json:"brand"`
	Category    []string `json:"category,omitempty"`
	OwnerID     int      `json:"ownerId,omitempty"`
}

// GetID implements jsonstore.Identifiable.
func (p Product) GetID() int {
	return p.ID
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Model       string   `json:"model"`
	Price       float64  `json:"price" binding:"min=0"`
	Quantity    int      `json:"quantity"`
	ImageURL    []string `json:"imageUrl"`
	Brand       Brand    `json:"brand"`
	Category    []string `json:"category"`
	OwnerID     int      `json:"ownerId"`
}

// UpdateProductRequest represents a partial product update. Only fields
// present in the payload are merged onto the stored record, which is why
// everything is a pointer. OwnerID also doubles as the marker deciding
// whether a quantity edit reaches the ledger.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Code        *string   `json:"code"`
	Model       *string   `json:"model"`
	Price       *float64  `json:"price"`
	Quantity    *int      `json:"quantity"`
	ImageURL    *[]string `json:"imageUrl"`
	Brand       *Brand    `json:"brand"`
	Category    *[]string `json:"category"`
	OwnerID     *int      `json:"ownerId"`
}

// ProductListRequest represents catalog listing filters
type ProductListRequest struct {
	MinPrice  *float64 `form:"minPrice"`
	MaxPrice  *float64 `form:"maxPrice"`
	Name      string   `form:"name"`
	Brand     string   `form:"brand"`    // comma-separated, case-insensitive
	Category  string   `form:"category"` // comma-separated, case-insensitive
	SortBy    string   `form:"sortBy"`
	SortOrder string   `form:"sortOrder"`
}

// StockRecorder receives catalog events that belong in the inventory
// ledger. The inventory service implements it; the product service only
// raises the events and never touches the ledger itself.
type StockRecorder interface {
	// RecordInitialStock records the opening entry for a newly created
	// product when it arrives with stock and an owner.
	RecordInitialStock(p Product) error

	// ReconcileQuantityChange records the entry/exit matching a direct
	// quantity edit. ownerID is nil when the update payload carried no
	// owner, in which case no ledger entry may be written.
	ReconcileQuantityChange(productID, oldQuantity, newQuantity int, ownerID *int) error
}
