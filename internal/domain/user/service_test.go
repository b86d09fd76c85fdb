package user

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "storefront-backend-test"
	cfg.JWT.Secret = "test-secret-with-at-least-32-characters"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour
	cfg.Security.BcryptCost = 4 // keep the tests fast
	return cfg
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := jsonstore.Open(t.TempDir(), log)
	require.NoError(t, err)
	return NewService(store, testConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Register(&RegisterRequest{
		Email:    "Supplier@Example.com",
		Password: "correct-horse",
		UserType: TypeSupplier,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "supplier@example.com", created.Email)
	assert.Equal(t, TypeSupplier, created.UserType)

	resp, err := svc.Login(&LoginRequest{
		Email:    "supplier@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(&RegisterRequest{Email: "a@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Email: "A@Example.COM", Password: "other-password"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(&RegisterRequest{Email: "a@example.com", Password: "short"})
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(&RegisterRequest{Email: "a@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "a@example.com", Password: "wrong-horse"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "whatever-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserHidesPasswordHash(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Register(&RegisterRequest{Email: "a@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	got, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	_, err = svc.GetUser(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
