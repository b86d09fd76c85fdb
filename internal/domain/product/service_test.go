package product

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

// recorderSpy captures what the catalog hands to the inventory ledger.
type recorderSpy struct {
	initial    []Product
	reconciles []reconcileCall
}

type reconcileCall struct {
	productID   int
	oldQuantity int
	newQuantity int
	ownerID     *int
}

func (r *recorderSpy) RecordInitialStock(p Product) error {
	r.initial = append(r.initial, p)
	return nil
}

func (r *recorderSpy) ReconcileQuantityChange(productID, oldQuantity, newQuantity int, ownerID *int) error {
	r.reconciles = append(r.reconciles, reconcileCall{productID, oldQuantity, newQuantity, ownerID})
	return nil
}

func newTestService(t *testing.T) (*Service, *recorderSpy) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := jsonstore.Open(t.TempDir(), log)
	require.NoError(t, err)

	spy := &recorderSpy{}
	return NewService(store, spy, log), spy
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCreateProductAssignsSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.CreateProduct(&CreateProductRequest{Name: "Drill"})
	require.NoError(t, err)
	second, err := svc.CreateProduct(&CreateProductRequest{Name: "Hammer"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestCreateProductReportsInitialStock(t *testing.T) {
	svc, spy := newTestService(t)

	created, err := svc.CreateProduct(&CreateProductRequest{
		Name:     "Drill",
		Quantity: 10,
		OwnerID:  3,
	})
	require.NoError(t, err)

	require.Len(t, spy.initial, 1)
	assert.Equal(t, created.ID, spy.initial[0].ID)
	assert.Equal(t, 10, spy.initial[0].Quantity)
	assert.Equal(t, 3, spy.initial[0].OwnerID)
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetProduct(99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProductMergesPartialPayload(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProduct(&CreateProductRequest{
		Name:        "Drill",
		Description: "cordless",
		Price:       49.90,
		Quantity:    5,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, &UpdateProductRequest{
		Price: floatPtr(39.90),
	})
	require.NoError(t, err)

	// Untouched fields survive the merge.
	assert.Equal(t, "Drill", updated.Name)
	assert.Equal(t, "cordless", updated.Description)
	assert.Equal(t, 39.90, updated.Price)
	assert.Equal(t, 5, updated.Quantity)
}

func TestUpdateProductReconcilesQuantityChange(t *testing.T) {
	svc, spy := newTestService(t)

	created, err := svc.CreateProduct(&CreateProductRequest{Name: "Drill", Quantity: 10})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(created.ID, &UpdateProductRequest{
		Quantity: intPtr(16),
		OwnerID:  intPtr(3),
	})
	require.NoError(t, err)

	require.Len(t, spy.reconciles, 1)
	call := spy.reconciles[0]
	assert.Equal(t, created.ID, call.productID)
	assert.Equal(t, 10, call.oldQuantity)
	assert.Equal(t, 16, call.newQuantity)
	require.NotNil(t, call.ownerID)
	assert.Equal(t, 3, *call.ownerID)
}

func TestUpdateProductWithoutOwnerStillReportsNilOwner(t *testing.T) {
	svc, spy := newTestService(t)

	created, err := svc.CreateProduct(&CreateProductRequest{Name: "Drill", Quantity: 10})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(created.ID, &UpdateProductRequest{Quantity: intPtr(4)})
	require.NoError(t, err)

	require.Len(t, spy.reconciles, 1)
	assert.Nil(t, spy.reconciles[0].ownerID)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, spy := newTestService(t)

	_, err := svc.UpdateProduct(99, &UpdateProductRequest{Quantity: intPtr(4)})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, spy.reconciles)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProduct(&CreateProductRequest{Name: "Drill"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID))

	_, err = svc.GetProduct(created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.DeleteProduct(created.ID), ErrNotFound)
}

func TestGetProductsByOwner(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProduct(&CreateProductRequest{Name: "Drill", OwnerID: 3})
	require.NoError(t, err)
	_, err = svc.CreateProduct(&CreateProductRequest{Name: "Hammer", OwnerID: 4})
	require.NoError(t, err)
	_, err = svc.CreateProduct(&CreateProductRequest{Name: "Saw", OwnerID: 3})
	require.NoError(t, err)

	mine, err := svc.GetProductsByOwner(3)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Drill", mine[0].Name)
	assert.Equal(t, "Saw", mine[1].Name)

	none, err := svc.GetProductsByOwner(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetProductsFilters(t *testing.T) {
	svc, _ := newTestService(t)

	seed := []CreateProductRequest{
		{Name: "Cordless Drill", Price: 80, Brand: Brand{Name: "Bosch"}, Category: []string{"Tools"}},
		{Name: "Hammer", Price: 15, Brand: Brand{Name: "Stanley"}, Category: []string{"Tools", "Hand Tools"}},
		{Name: "Paint Roller", Price: 8, Brand: Brand{Name: "Harris"}, Category: []string{"Painting"}},
	}
	for i := range seed {
		_, err := svc.CreateProduct(&seed[i])
		require.NoError(t, err)
	}

	t.Run("price range", func(t *testing.T) {
		got, err := svc.GetProducts(&ProductListRequest{MinPrice: floatPtr(10), MaxPrice: floatPtr(100)})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("name substring ignores case", func(t *testing.T) {
		got, err := svc.GetProducts(&ProductListRequest{Name: "drill"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Cordless Drill", got[0].Name)
	})

	t.Run("brand list", func(t *testing.T) {
		got, err := svc.GetProducts(&ProductListRequest{Brand: "bosch,stanley"})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("category matches any", func(t *testing.T) {
		got, err := svc.GetProducts(&ProductListRequest{Category: "hand tools"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Hammer", got[0].Name)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		got, err := svc.GetProducts(&ProductListRequest{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestGetProductsSorting(t *testing.T) {
	svc, _ := newTestService(t)

	for _, req := range []CreateProductRequest{
		{Name: "banana", Price: 3},
		{Name: "Apple", Price: 2},
		{Name: "cherry", Price: 1},
	} {
		r := req
		_, err := svc.CreateProduct(&r)
		require.NoError(t, err)
	}

	byName, err := svc.GetProducts(&ProductListRequest{SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(byName))

	// Without an explicit "asc" the sort runs descending.
	byNameDefault, err := svc.GetProducts(&ProductListRequest{SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, names(byNameDefault))

	byPriceDesc, err := svc.GetProducts(&ProductListRequest{SortBy: "price", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"banana", "Apple", "cherry"}, names(byPriceDesc))

	// Unknown sort keys leave insertion order alone.
	unsorted, err := svc.GetProducts(&ProductListRequest{SortBy: "weight"})
	require.NoError(t, err)
	assert.Equal(t, []string{"banana", "Apple", "cherry"}, names(unsorted))
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}
