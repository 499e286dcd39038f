package routes

import (
	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/handlers/product"
	"ornella_back_end/internal/handlers/user"
	"ornella_back_end/internal/middleware"
)

// RegisterRoutes câble le storefront et la console admin.
func RegisterRoutes(r *gin.Engine, carts *user.CartHandler, wishlists *user.WishlistHandler) {
	api := r.Group("/api")
	api.Use(middleware.ClientSession())

	// Catalogue (storefront)
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/filters", product.GetProductFilters)
	api.GET("/products/search", middleware.SearchRateLimit(), product.SearchProducts)
	api.GET("/products/category/:category", product.GetProductsByCategory)
	api.GET("/products/:itemId", product.GetProduct)

	// Panier
	api.GET("/cart", carts.Get)
	api.POST("/cart/add", carts.Add)
	api.PUT("/cart/:productId", carts.UpdateQuantity)
	api.DELETE("/cart/clear", carts.Clear)
	api.DELETE("/cart/:productId", carts.Remove)

	// Wishlist
	api.GET("/wishlist", wishlists.Get)
	api.POST("/wishlist", wishlists.Add)
	api.GET("/wishlist/contains/:productId", wishlists.Contains)
	api.DELETE("/wishlist/:productId", wishlists.Remove)

	// Console admin (inventaire)
	admin := api.Group("/products/admin")
	admin.Use(middleware.AuthRequired(), middleware.RequireAdmin, middleware.AdminRateLimit())
	admin.DELETE("/:itemId", product.DeleteProduct)
	admin.PUT("/:itemId/price", product.UpdatePrice)
}
