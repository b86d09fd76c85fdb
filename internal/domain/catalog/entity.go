// internal/domain/catalog/entity.go
package catalog

// Brand represents a product brand.
type Brand struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"imagen,omitempty"`
}

// GetID implements jsonstore.Identifiable.
func (b Brand) GetID() int { return b.ID }

// Category represents a product category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID implements jsonstore.Identifiable.
func (c Category) GetID() int { return c.ID }

// BusinessActivity is a fixed classification entry offered to companies.
type BusinessActivity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID implements jsonstore.Identifiable.
func (a BusinessActivity) GetID() int { return a.ID }

// BrandRequest carries brand creation/update data.
type BrandRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"imagen"`
}

// CategoryRequest carries category creation/update data.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
