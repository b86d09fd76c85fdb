// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

var (
	// ErrBrandNotFound is returned for unknown brand ids.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrCategoryNotFound is returned for unknown category ids.
	ErrCategoryNotFound = errors.New("category not found")
)

// Service handles brand, category and business activity management.
type Service struct {
	brands     *jsonstore.TypedCollection[Brand]
	categories *jsonstore.TypedCollection[Category]
	activities *jsonstore.TypedCollection[BusinessActivity]
}

// NewService creates a new catalog service
func NewService(store *jsonstore.Store) *Service {
	return &Service{
		brands:     jsonstore.Collection[Brand](store, "brands"),
		categories: jsonstore.Collection[Category](store, "categories"),
		activities: jsonstore.Collection[BusinessActivity](store, "business-activities"),
	}
}

// GetBrands retrieves every brand
func (s *Service) GetBrands() ([]Brand, error) {
	brands, err := s.brands.All()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve brands: %w", err)
	}
	return brands, nil
}

// CreateBrand creates a new brand
func (s *Service) CreateBrand(req *BrandRequest) (*Brand, error) {
	var created Brand
	err := s.brands.Update(func(items []Brand) ([]Brand, error) {
		created = Brand{
			ID:    jsonstore.NextID(items),
			Name:  req.Name,
			Image: req.Image,
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &created, nil
}

// UpdateBrand renames a brand and, when provided, replaces its image.
func (s *Service) UpdateBrand(id int, req *BrandRequest) (*Brand, error) {
	var updated Brand
	err := s.brands.Update(func(items []Brand) ([]Brand, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Name = req.Name
				if req.Image != "" {
					items[i].Image = req.Image
				}
				updated = items[i]
				return items, nil
			}
		}
		return nil, ErrBrandNotFound
	})
	if err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return &updated, nil
}

// DeleteBrand removes a brand
func (s *Service) DeleteBrand(id int) error {
	err := s.brands.Update(func(items []Brand) ([]Brand, error) {
		kept := items[:0]
		for _, b := range items {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(items) {
			return nil, ErrBrandNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

// GetCategories retrieves every category
func (s *Service) GetCategories() ([]Category, error) {
	categories, err := s.categories.All()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a new category
func (s *Service) CreateCategory(req *CategoryRequest) (*Category, error) {
	var created Category
	err := s.categories.Update(func(items []Category) ([]Category, error) {
		created = Category{
			ID:   jsonstore.NextID(items),
			Name: req.Name,
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &created, nil
}

// UpdateCategory renames a category
func (s *Service) UpdateCategory(id int, req *CategoryRequest) (*Category, error) {
	var updated Category
	err := s.categories.Update(func(items []Category) ([]Category, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Name = req.Name
				updated = items[i]
				return items, nil
			}
		}
		return nil, ErrCategoryNotFound
	})
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &updated, nil
}

// DeleteCategory removes a category
func (s *Service) DeleteCategory(id int) error {
	err := s.categories.Update(func(items []Category) ([]Category, error) {
		kept := items[:0]
		for _, c := range items {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(items) {
			return nil, ErrCategoryNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// GetBusinessActivities retrieves the business activity catalogue
func (s *Service) GetBusinessActivities() ([]BusinessActivity, error) {
	activities, err := s.activities.All()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve business activities: %w", err)
	}
	return activities, nil
}
