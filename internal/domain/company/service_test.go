package company

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

func newTestService(t *testing.T) (*Service, *jsonstore.Store) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := jsonstore.Open(t.TempDir(), log)
	require.NoError(t, err)
	return NewService(store), store
}

func seedCompany(t *testing.T, store *jsonstore.Store, c Company) {
	t.Helper()

	companies := jsonstore.Collection[Company](store, "company")
	require.NoError(t, companies.Update(func(items []Company) ([]Company, error) {
		return append(items, c), nil
	}))
}

func strPtr(s string) *string { return &s }

func TestGetByUser(t *testing.T) {
	svc, store := newTestService(t)
	seedCompany(t, store, Company{ID: 1, UserID: 3, Name: "Ferretería El Clavo"})

	got, err := svc.GetByUser(3)
	require.NoError(t, err)
	assert.Equal(t, "Ferretería El Clavo", got.Name)

	_, err = svc.GetByUser(99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateByUserMergesFields(t *testing.T) {
	svc, store := newTestService(t)
	seedCompany(t, store, Company{
		ID:     1,
		UserID: 3,
		Name:   "Ferretería El Clavo",
		Phone:  "5555-1234",
	})

	updated, err := svc.UpdateByUser(3, &UpdateCompanyRequest{
		Email: strPtr("ventas@elclavo.gt"),
		NIT:   strPtr("1234567-8"),
	})
	require.NoError(t, err)

	assert.Equal(t, "ventas@elclavo.gt", updated.Email)
	assert.Equal(t, "1234567-8", updated.NIT)
	// Absent fields keep their stored value.
	assert.Equal(t, "Ferretería El Clavo", updated.Name)
	assert.Equal(t, "5555-1234", updated.Phone)
}

func TestUpdateByUserNeverReassignsOwner(t *testing.T) {
	svc, store := newTestService(t)
	seedCompany(t, store, Company{ID: 1, UserID: 3})

	updated, err := svc.UpdateByUser(3, &UpdateCompanyRequest{Name: strPtr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.UserID)
}

func TestUpdateByUserNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateByUser(99, &UpdateCompanyRequest{Name: strPtr("Ghost")})
	require.ErrorIs(t, err, ErrNotFound)
}
