package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRespondComputesTotals(t *testing.T) {
	svc := &Service{}

	now := time.Now().UTC()
	resp := svc.respond(&SessionCart{
		SessionID: "abc",
		Items: []SessionCartItem{
			{ProductID: 1, Quantity: 2, Price: 80},
			{ProductID: 2, Quantity: 1, Price: 15.50},
		},
		CreatedAt: now,
		UpdatedAt: now,
	})

	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.Equal(t, 3, resp.Totals.TotalQuantity)
	assert.InDelta(t, 175.50, resp.Totals.TotalAmount, 0.001)
}

func TestRespondEmptyCart(t *testing.T) {
	svc := &Service{}

	resp := svc.respond(&SessionCart{SessionID: "abc", Items: []SessionCartItem{}})

	assert.Zero(t, resp.Totals.ItemCount)
	assert.Zero(t, resp.Totals.TotalQuantity)
	assert.Zero(t, resp.Totals.TotalAmount)
	assert.NotNil(t, resp.Items)
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart:session:abc-123", cartKey("abc-123"))
}
