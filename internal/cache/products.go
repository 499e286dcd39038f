package cache

import (
	"context"
	"encoding/json"
	"time"

	"ornella_back_end/internal/database"
	"ornella_back_end/internal/models"
)

const (
	ProductListCacheTTL = 10 * time.Minute
	ProductCacheTTL     = 10 * time.Minute

	productListKey = "products:all"
)

// GetProductList lit la liste complète du catalogue depuis Redis.
// Une entrée absente ou illisible vaut simplement « pas en cache ».
func GetProductList(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, productListKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProductList met la liste complète en cache.
func SetProductList(ctx context.Context, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, productListKey, data, ProductListCacheTTL)
	}
}

// GetProduct lit un produit en cache par clé canonique.
func GetProduct(ctx context.Context, key string) (*models.Product, bool) {
	data, err := database.Redis.Get(ctx, "product:"+key).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var p models.Product
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, false
	}
	return &p, true
}

// SetProduct met un produit en cache.
func SetProduct(ctx context.Context, p models.Product) {
	if data, err := json.Marshal(p); err == nil {
		database.Redis.Set(ctx, "product:"+p.Key(), data, ProductCacheTTL)
	}
}

// InvalidateProduct purge un produit et la liste après une mutation admin.
func InvalidateProduct(ctx context.Context, key string) {
	database.Redis.Del(ctx, "product:"+key, productListKey)
}
