// internal/interfaces/http/handlers/company.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/company"
)

// CompanyHandler handles company profile endpoints
type CompanyHandler struct {
	companyService *company.Service
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *company.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// GetCompany handles GET /api/company/:userId
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid user ID",
		})
		return
	}

	profile, err := h.companyService.GetByUser(userID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Company not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve company",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateCompany handles PUT /api/company/:userId
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid user ID",
		})
		return
	}

	var req company.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid company payload",
		})
		return
	}

	updated, err := h.companyService.UpdateByUser(userID, &req)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Company not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update company",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}
