package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/config"
	"ornella_back_end/internal/database"
	"ornella_back_end/internal/handlers/product"
	"ornella_back_end/internal/handlers/user"
	"ornella_back_end/internal/middleware"
	"ornella_back_end/internal/routes"
	"ornella_back_end/internal/store"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Prepared statements pour les lectures chaudes du catalogue
	database.WarmupPreparedStatements()

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	middleware.InitSessionStore()

	// Stores panier/wishlist : construits explicitement, persistance Redis
	persistence := store.NewRedisPersistence(database.Redis)
	carts := user.NewCartHandler(store.NewCartStore(persistence), product.FetchByKey)
	wishlists := user.NewWishlistHandler(store.NewWishlistStore(persistence), product.FetchByKey)

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(r, carts, wishlists)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Ornella lancé sur le port", port)
	r.Run(":" + port)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	return cfg
}

// warmupRedisCache pré-chauffe la connexion Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}
