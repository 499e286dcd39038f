package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ornella_back_end/internal/models"
	"ornella_back_end/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testProducts = map[string]models.Product{
	"L-001": {LotNo: "L-001", Description: "Gold Ring", SubCategory: "Rings", DisplayPrice: 250},
	"L-002": {LotNo: "L-002", Description: "Silver Chain", SubCategory: "Chains", DisplayPrice: 120, OfferPrice: 90},
	"L-DEL": {LotNo: "L-DEL", Description: "Retired", DisplayPrice: 10, Removed: true},
}

func testLookup(ctx context.Context, key string) (*models.Product, error) {
	if p, ok := testProducts[key]; ok {
		return &p, nil
	}
	return nil, nil
}

// fakeClient pose un client_id fixe, comme le middleware de session.
func fakeClient(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_id", id)
		c.Next()
	}
}

func newCartRouter() *gin.Engine {
	h := NewCartHandler(store.NewCartStore(store.NewMemoryPersistence()), testLookup)

	r := gin.New()
	api := r.Group("/api", fakeClient("client-1"))
	api.GET("/cart", h.Get)
	api.POST("/cart/add", h.Add)
	api.PUT("/cart/:productId", h.UpdateQuantity)
	api.DELETE("/cart/clear", h.Clear)
	api.DELETE("/cart/:productId", h.Remove)
	return r
}

type cartBody struct {
	Items     []models.CartItem `json:"items"`
	CartCount int               `json:"cart_count"`
	CartTotal float64           `json:"cart_total"`
	Notice    *store.Notice     `json:"notice"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, cartBody) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed cartBody
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func TestCartAddIncrementsAndTotals(t *testing.T) {
	r := newCartRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-001"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, body.Notice)
	assert.Equal(t, "Produit ajouté au panier", body.Notice.Message)

	w, body = doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-001"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Quantité mise à jour", body.Notice.Message)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, 2, body.CartCount)
	assert.Equal(t, 500.0, body.CartTotal)
}

func TestCartAddUsesActiveOfferPrice(t *testing.T) {
	r := newCartRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-002"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 90.0, body.Items[0].Price)
}

func TestCartAddUnknownOrRemovedProduct(t *testing.T) {
	r := newCartRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-DEL"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartUpdateQuantityZeroIsSilentNoop(t *testing.T) {
	r := newCartRouter()

	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-001"})

	w, body := doJSON(t, r, http.MethodPut, "/api/cart/L-001", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body.Notice)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 1, body.Items[0].Quantity)

	w, body = doJSON(t, r, http.MethodPut, "/api/cart/L-001", gin.H{"quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, body.Items[0].Quantity)
	assert.Equal(t, 4, body.CartCount)
}

func TestCartRemoveThenGetEmpty(t *testing.T) {
	r := newCartRouter()

	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-001"})

	w, body := doJSON(t, r, http.MethodDelete, "/api/cart/L-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, body.Notice)
	assert.Equal(t, "Produit supprimé du panier", body.Notice.Message)

	// Suppression d'un article absent : pas de notice.
	w, body = doJSON(t, r, http.MethodDelete, "/api/cart/L-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body.Notice)

	w, body = doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body.Items)
	assert.Equal(t, 0, body.CartCount)
}

func TestCartClear(t *testing.T) {
	r := newCartRouter()

	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-001"})
	doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": "L-002"})

	w, _ := doJSON(t, r, http.MethodDelete, "/api/cart/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, body := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	assert.Empty(t, body.Items)
}

func TestCartRequiresClientSession(t *testing.T) {
	h := NewCartHandler(store.NewCartStore(store.NewMemoryPersistence()), testLookup)

	r := gin.New()
	r.GET("/api/cart", h.Get) // pas de middleware de session

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
