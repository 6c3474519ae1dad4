package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/app/routes"
	"github.com/shashiranjanraj/vinayak/internal/server"
	"github.com/shashiranjanraj/vinayak/pkg/testkit"
)

// freshHandler builds the full production middleware + route stack over
// empty in-memory repositories.
func freshHandler() http.Handler {
	return server.Build(routes.Deps{
		Products: repositories.NewMemoryProductRepository(),
		Orders:   repositories.NewMemoryOrderRepository(),
		Users:    repositories.NewMemoryUserRepository(),
	}).Handler()
}

// Each scenario gets its own handler so empty-store assertions never see
// another scenario's writes.
func TestScenarios(t *testing.T) {
	testkit.Run(t, freshHandler(), "testdata/get_products_empty.json")
	testkit.Run(t, freshHandler(), "testdata/create_product.json")
	testkit.Run(t, freshHandler(), "testdata/create_product_missing_fields.json")
	testkit.Run(t, freshHandler(), "testdata/get_recent_orders_empty.json")
}

func TestCreateProductReturnsStoredRecord(t *testing.T) {
	handler := freshHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/products",
		strings.NewReader(`{"name":"Ladoo","price":120,"category":"sweets"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message string `json:"message"`
		Product struct {
			ID       string  `json:"_id"`
			Name     string  `json:"name"`
			Price    float64 `json:"price"`
			Category string  `json:"category"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product added!", body.Message)
	assert.Equal(t, "Ladoo", body.Product.Name)
	assert.Equal(t, 120.0, body.Product.Price)
	assert.Equal(t, "sweets", body.Product.Category)
	assert.NotEmpty(t, body.Product.ID)

	// The created product shows up in the listing.
	listReq := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	listRec := httptest.NewRecorder()
	handler.ServeHTTP(listRec, listReq)
	require.Equal(t, http.StatusOK, listRec.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Ladoo", products[0]["name"])
}

func TestRegisterUserConflict(t *testing.T) {
	handler := freshHandler()
	payload := `{"name":"Asha","email":"asha@example.com"}`

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(payload)))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(payload)))
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "error")
}

func TestHealthRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	freshHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend is running", rec.Body.String())
}

func TestPlaceOrderRoute(t *testing.T) {
	handler := freshHandler()

	body := `{"name":"Asha","email":"asha@example.com","phone":"9876500000",
		"items":[{"name":"Kaju Katli","price":450,"quantity":2}]}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	recent := httptest.NewRecorder()
	handler.ServeHTTP(recent, httptest.NewRequest(http.MethodGet, "/api/orders/recent", nil))
	require.Equal(t, http.StatusOK, recent.Code)

	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(recent.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "pending", orders[0]["status"])
	assert.Equal(t, 900.0, orders[0]["total"])
}
