package product

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doPriceUpdate(t *testing.T, payload string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.PUT("/api/products/admin/:itemId/price", UpdatePrice)

	req := httptest.NewRequest(http.MethodPut, "/api/products/admin/L-001/price",
		bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// La validation bloque côté serveur avant toute écriture : jamais de requête
// base de données pour un corps invalide.
func TestUpdatePriceValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"displayPrice manquant", `{"discountPrice": 50}`},
		{"displayPrice négatif", `{"displayPrice": -10}`},
		{"discountPrice négatif", `{"displayPrice": 100, "discountPrice": -5}`},
		{"discountPrice égal au prix", `{"displayPrice": 100, "discountPrice": 100}`},
		{"discountPrice supérieur au prix", `{"displayPrice": 100, "discountPrice": 150}`},
		{"corps illisible", `{displayPrice`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doPriceUpdate(t, tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}
