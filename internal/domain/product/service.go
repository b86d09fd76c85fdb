// internal/domain/product/service.go
package product

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

// ErrNotFound is returned when the referenced product does not exist.
var ErrNotFound = errors.New("product not found")

// Service handles catalog business logic
type Service struct {
	products *jsonstore.TypedCollection[Product]
	recorder StockRecorder
	log      *logrus.Logger
}

// NewService creates a new product service. recorder may be nil, in which
// case catalog changes never reach the inventory ledger.
func NewService(store *jsonstore.Store, recorder StockRecorder, log *logrus.Logger) *Service {
	return &Service{
		products: jsonstore.Collection[Product](store, "products"),
		recorder: recorder,
		log:      log,
	}
}

// GetProducts retrieves the catalog with the request's filters and sorting
// applied.
func (s *Service) GetProducts(req *ProductListRequest) ([]Product, error) {
	products, err := s.products.All()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if req.MinPrice != nil && p.Price < *req.MinPrice {
			continue
		}
		if req.MaxPrice != nil && p.Price > *req.MaxPrice {
			continue
		}
		if req.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(req.Name)) {
			continue
		}
		if req.Brand != "" && !matchesAny(req.Brand, []string{p.Brand.Name}) {
			continue
		}
		if req.Category != "" && !matchesAny(req.Category, p.Category) {
			continue
		}
		filtered = append(filtered, p)
	}

	if req.SortBy != "" {
		sortProducts(filtered, req.SortBy, req.SortOrder)
	}

	return filtered, nil
}

// GetProduct retrieves a single product by id
func (s *Service) GetProduct(id int) (*Product, error) {
	p, ok, err := s.products.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// GetProductsByOwner retrieves every product belonging to a supplier
func (s *Service) GetProductsByOwner(ownerID int) ([]Product, error) {
	products, err := s.products.Where(func(p Product) bool { return p.OwnerID == ownerID })
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// CreateProduct creates a product and, when it arrives with stock and an
// owner, records the opening ledger entry. The stored quantity is already
// the initial value; the ledger entry is the audit record.
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	var created Product

	err := s.products.Update(func(items []Product) ([]Product, error) {
		created = Product{
			ID:          jsonstore.NextID(items),
			Name:        req.Name,
			Description: req.Description,
			Code:        req.Code,
			Model:       req.Model,
			Price:       req.Price,
			Quantity:    req.Quantity,
			ImageURL:    req.ImageURL,
			Brand:       req.Brand,
			Category:    req.Category,
			OwnerID:     req.OwnerID,
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if s.recorder != nil {
		if err := s.recorder.RecordInitialStock(created); err != nil {
			return nil, fmt.Errorf("failed to record initial stock: %w", err)
		}
	}

	return &created, nil
}

// UpdateProduct merges the payload onto the stored product and reconciles
// any quantity change into the ledger.
func (s *Service) UpdateProduct(id int, req *UpdateProductRequest) (*Product, error) {
	var (
		updated     Product
		oldQuantity int
	)

	err := s.products.Update(func(items []Product) ([]Product, error) {
		idx := -1
		for i, p := range items {
			if p.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, ErrNotFound
		}

		oldQuantity = items[idx].Quantity
		items[idx] = merge(items[idx], req)
		updated = items[idx]
		return items, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if s.recorder != nil {
		if err := s.recorder.ReconcileQuantityChange(id, oldQuantity, updated.Quantity, req.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to reconcile quantity change: %w", err)
		}
	}

	return &updated, nil
}

// DeleteProduct removes a product. Ledger movements referencing it are left
// in place; history outlives the product.
func (s *Service) DeleteProduct(id int) error {
	err := s.products.Update(func(items []Product) ([]Product, error) {
		kept := items[:0]
		for _, p := range items {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(items) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.log.WithField("product_id", id).Debug("Product deleted, ledger movements left in place")
	return nil
}

func merge(p Product, req *UpdateProductRequest) Product {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.Model != nil {
		p.Model = *req.Model
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Brand != nil {
		p.Brand = *req.Brand
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.OwnerID != nil {
		p.OwnerID = *req.OwnerID
	}
	return p
}

// matchesAny reports whether any of the record's values appears in the
// comma-separated selection, ignoring case.
func matchesAny(selection string, values []string) bool {
	selected := strings.Split(strings.ToLower(selection), ",")
	for _, v := range values {
		lower := strings.ToLower(v)
		for _, sel := range selected {
			if strings.TrimSpace(sel) == lower {
				return true
			}
		}
	}
	return false
}

func sortProducts(products []Product, sortBy, sortOrder string) {
	less := func(a, b Product) bool { return false }

	switch sortBy {
	case "name":
		less = func(a, b Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "price":
		less = func(a, b Product) bool { return a.Price < b.Price }
	case "quantity":
		less = func(a, b Product) bool { return a.Quantity < b.Quantity }
	case "code":
		less = func(a, b Product) bool { return strings.ToLower(a.Code) < strings.ToLower(b.Code) }
	case "model":
		less = func(a, b Product) bool { return strings.ToLower(a.Model) < strings.ToLower(b.Model) }
	default:
		return
	}

	// Anything other than an explicit "asc" sorts descending.
	sort.SliceStable(products, func(i, j int) bool {
		if sortOrder == "asc" {
			return less(products[i], products[j])
		}
		return less(products[j], products[i])
	})
}
