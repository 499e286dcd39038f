package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/database"
)

const (
	// Limites par endpoint
	SearchMaxRequests = 60 // par minute et par IP (la frappe est déjà debouncée côté client)
	AdminMaxRequests  = 30 // par minute et par utilisateur

	SearchCooldown = 1 * time.Minute
	AdminCooldown  = 1 * time.Minute
)

// SearchRateLimit limite les recherches par IP via Redis.
func SearchRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		key := "search_requests:" + c.ClientIP()

		count, _ := database.Redis.Incr(ctx, key).Result()
		if count == 1 {
			database.Redis.Expire(ctx, key, SearchCooldown)
		}

		if count > SearchMaxRequests {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de recherches. Réessayez dans quelques instants",
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", SearchMaxRequests-count))
		c.Next()
	}
}

// AdminRateLimit limite les mutations d'inventaire par utilisateur admin.
func AdminRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "admin_requests:" + userID

		count, _ := database.Redis.Incr(ctx, key).Result()
		if count == 1 {
			database.Redis.Expire(ctx, key, AdminCooldown)
		}

		if count > AdminMaxRequests {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de modifications. Réessayez dans %d secondes", int(ttl.Seconds())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
