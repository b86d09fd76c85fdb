package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
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
	cfg.Security.BcryptCost = 4
	return cfg
}

// setupRouter wires the full route tree against a throwaway store. The Redis
// client is never dialed; none of the routes exercised here touch the cart.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := jsonstore.Open(t.TempDir(), log)
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	router := gin.New()
	api := router.Group("/api")
	SetupRoutes(api, store, redisClient, testConfig(), log)
	return router
}

func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return registerAndLoginAs(t, router, "supplier@example.com", "supplier")
}

func registerAndLoginAs(t *testing.T, router *gin.Engine, email, userType string) string {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/api/auth/register", gin.H{
		"email":    email,
		"password": "correct-horse",
		"userType": userType,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    email,
		"password": "correct-horse",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	router := setupRouter(t)

	payload := gin.H{"email": "a@example.com", "password": "correct-horse", "userType": "customer"}
	w := doJSON(router, http.MethodPost, "/api/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/register", payload, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)
	registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "supplier@example.com",
		"password": "wrong-horse",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductWritesRequireAuth(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/products", gin.H{"name": "Drill"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestProductLifecycle(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/api/products", gin.H{
		"name":     "Drill",
		"price":    80,
		"quantity": 10,
		"ownerId":  1,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID       int `json:"id"`
		Quantity int `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 10, created.Quantity)

	// Public read, no token.
	w = doJSON(router, http.MethodGet, "/api/products/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Creation with stock and owner left an opening ledger entry.
	w = doJSON(router, http.MethodGet, "/api/inventory-movements/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var movements []struct {
		Type  string `json:"type"`
		Notes string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movements))
	require.Len(t, movements, 1)
	assert.Equal(t, "entry", movements[0].Type)
	assert.Equal(t, "Initial stock", movements[0].Notes)

	w = doJSON(router, http.MethodDelete, "/api/products/1", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/products/1", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestRecordMovementEndpoint(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/api/products", gin.H{
		"name":     "Drill",
		"quantity": 10,
		"ownerId":  1,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/inventory-movements", gin.H{
		"productId": 1,
		"type":      "exit",
		"quantity":  4,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var product struct {
		Quantity int `json:"quantity"`
	}
	w = doJSON(router, http.MethodGet, "/api/products/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, 6, product.Quantity)
}

func TestRecordMovementValidationStatus(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/api/products", gin.H{"name": "Drill"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// Bad input -> 400 with the validation message.
	w = doJSON(router, http.MethodPost, "/api/inventory-movements", gin.H{
		"productId": 1,
		"type":      "exit",
		"quantity":  -2,
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quantity must be a positive number")

	// Unknown product -> 404, nothing recorded.
	w = doJSON(router, http.MethodPost, "/api/inventory-movements", gin.H{
		"productId": 99,
		"type":      "exit",
		"quantity":  2,
	}, token)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestPlaceOrderAsGuest(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/api/products", gin.H{
		"name":     "Drill",
		"quantity": 10,
		"ownerId":  1,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// Orders do not require authentication.
	w = doJSON(router, http.MethodPost, "/api/orders", gin.H{
		"customerInfo": gin.H{"name": "Ana", "city": "Guatemala"},
		"items": []gin.H{
			{"productId": 1, "name": "Drill", "quantity": 2, "price": 80},
		},
		"total": 160,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var placed struct {
		OrderNumber string `json:"orderNumber"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.NotEmpty(t, placed.OrderNumber)

	var product struct {
		Quantity int `json:"quantity"`
	}
	w = doJSON(router, http.MethodGet, "/api/products/1", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, 8, product.Quantity)
}

func TestOrderListIsAdminOnly(t *testing.T) {
	router := setupRouter(t)

	customerToken := registerAndLoginAs(t, router, "shopper@example.com", "customer")
	w := doJSON(router, http.MethodGet, "/api/orders", nil, customerToken)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")

	adminToken := registerAndLoginAs(t, router, "admin@example.com", "admin")
	w = doJSON(router, http.MethodGet, "/api/orders", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProfile(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Email    string `json:"email"`
		UserType string `json:"userType"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "supplier@example.com", profile.Email)
	assert.Equal(t, "supplier", profile.UserType)

	w = doJSON(router, http.MethodGet, "/api/auth/profile", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBusinessActivitiesArePublic(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/api/business-activities", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCompanyRequiresAuth(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/api/company/3", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
