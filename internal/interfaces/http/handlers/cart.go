// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
)

// CartHandler handles guest cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// sessionID returns the caller's cart session, minting one when absent.
// The id is echoed back so the client can persist it.
func (h *CartHandler) sessionID(c *gin.Context) string {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	c.Header("X-Session-ID", sessionID)
	return sessionID
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	resp, err := h.cartService.GetCart(c.Request.Context(), h.sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid cart payload",
		})
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), h.sessionID(c), &req)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateItem handles PUT /api/cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid product ID",
		})
		return
	}

	var req cart.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid cart payload",
		})
		return
	}

	resp, err := h.cartService.UpdateItem(c.Request.Context(), h.sessionID(c), productID, &req)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveItem handles DELETE /api/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid product ID",
		})
		return
	}

	resp, err := h.cartService.RemoveItem(c.Request.Context(), h.sessionID(c), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context(), h.sessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to clear cart",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrNotFound), errors.Is(err, cart.ErrProductUnavailable):
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Product not found",
		})
	case errors.Is(err, cart.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Insufficient stock",
		})
	case errors.Is(err, cart.ErrItemNotInCart):
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Item not in cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update cart",
		})
	}
}
