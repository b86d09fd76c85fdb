// internal/interfaces/http/handlers/inventory.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/inventory"
)

// InventoryHandler handles inventory ledger endpoints
type InventoryHandler struct {
	inventoryService *inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *inventory.Service) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RecordMovement handles POST /api/inventory-movements
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req inventory.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid movement payload",
		})
		return
	}

	movement, err := h.inventoryService.RecordMovement(&req)
	if err != nil {
		h.writeMovementError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movement)
}

// UpdateMovement handles PUT /api/inventory-movements/:id
func (h *InventoryHandler) UpdateMovement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid movement ID",
		})
		return
	}

	var req inventory.UpdateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid movement payload",
		})
		return
	}

	movement, err := h.inventoryService.UpdateMovement(id, &req)
	if err != nil {
		h.writeMovementError(c, err)
		return
	}

	c.JSON(http.StatusOK, movement)
}

// GetMovements handles GET /api/inventory-movements/:productId
func (h *InventoryHandler) GetMovements(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid product ID",
		})
		return
	}

	movements, err := h.inventoryService.GetMovements(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve movements",
		})
		return
	}

	c.JSON(http.StatusOK, movements)
}

func (h *InventoryHandler) writeMovementError(c *gin.Context, err error) {
	switch {
	case inventory.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
		})
	case errors.Is(err, inventory.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Product not found",
		})
	case errors.Is(err, inventory.ErrMovementNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Movement not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to record movement",
		})
	}
}
