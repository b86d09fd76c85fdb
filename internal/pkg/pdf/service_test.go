package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

func TestGenerateHTML(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.MerchantName = "PlazaClic"
	cfg.App.MerchantEmail = "ventas@example.com"

	svc := NewService(cfg)

	html, err := svc.generateHTML(InvoiceData{
		InvoiceNumber: "INV-ORD-ABC12345",
		InvoiceDate:   "January 2, 2026",
		Order: &order.Order{
			OrderNumber: "ORD-ABC12345",
			CustomerInfo: order.CustomerInfo{
				Name: "Ana",
				City: "Guatemala",
			},
			Items: []order.OrderItem{
				{Name: "Drill", Quantity: 2, Price: 80},
				{Name: "Hammer", Quantity: 1, Price: 15.5},
			},
			Total: 175.50,
		},
		Merchant: MerchantInfo{
			Name:  cfg.App.MerchantName,
			Email: cfg.App.MerchantEmail,
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "INV-ORD-ABC12345")
	assert.Contains(t, html, "PlazaClic")
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, "Drill")
	assert.Contains(t, html, "160.00") // 2 x 80
	assert.Contains(t, html, "175.50")
}
