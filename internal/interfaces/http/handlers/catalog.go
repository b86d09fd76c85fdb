// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles brand, category and business activity endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetBrands handles GET /api/brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalogService.GetBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve brands",
		})
		return
	}

	c.JSON(http.StatusOK, brands)
}

// CreateBrand handles POST /api/brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req catalog.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Brand name is required",
		})
		return
	}

	created, err := h.catalogService.CreateBrand(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create brand",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateBrand handles PUT /api/brands/:id
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid brand ID",
		})
		return
	}

	var req catalog.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Brand name is required",
		})
		return
	}

	updated, err := h.catalogService.UpdateBrand(id, &req)
	if err != nil {
		if errors.Is(err, catalog.ErrBrandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Brand not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update brand",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBrand handles DELETE /api/brands/:id
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid brand ID",
		})
		return
	}

	if err := h.catalogService.DeleteBrand(id); err != nil {
		if errors.Is(err, catalog.ErrBrandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Brand not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete brand",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCategories handles GET /api/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve categories",
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req catalog.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Category name is required",
		})
		return
	}

	created, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create category",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateCategory handles PUT /api/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid category ID",
		})
		return
	}

	var req catalog.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Category name is required",
		})
		return
	}

	updated, err := h.catalogService.UpdateCategory(id, &req)
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Category not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update category",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCategory handles DELETE /api/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid category ID",
		})
		return
	}

	if err := h.catalogService.DeleteCategory(id); err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Category not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete category",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBusinessActivities handles GET /api/business-activities
func (h *CatalogHandler) GetBusinessActivities(c *gin.Context) {
	activities, err := h.catalogService.GetBusinessActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve business activities",
		})
		return
	}

	c.JSON(http.StatusOK, activities)
}
