package product

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/catalog"
	"ornella_back_end/internal/services"
)

// Une session de recherche par client : la frappe rapide d'un client annule
// ses propres requêtes en vol, jamais celles des autres. La table est bornée,
// le client le plus anciennement vu est évincé quand elle déborde.
const maxSearchSessions = 1024

type clientSearchSession struct {
	session  *services.SearchSession
	lastSeen time.Time
}

var (
	searchSessions   = make(map[string]*clientSearchSession)
	searchSessionsMu sync.Mutex
)

func sessionFor(clientID string) *services.SearchSession {
	searchSessionsMu.Lock()
	defer searchSessionsMu.Unlock()

	cs, ok := searchSessions[clientID]
	if !ok {
		if len(searchSessions) >= maxSearchSessions {
			evictOldestSessionLocked()
		}
		cs = &clientSearchSession{session: services.NewSearchSession()}
		searchSessions[clientID] = cs
	}
	cs.lastSeen = time.Now()
	return cs.session
}

func evictOldestSessionLocked() {
	var oldestID string
	var oldest time.Time
	for id, cs := range searchSessions {
		if oldestID == "" || cs.lastSeen.Before(oldest) {
			oldestID = id
			oldest = cs.lastSeen
		}
	}
	delete(searchSessions, oldestID)
}

// GET /api/products/search?q=&limit= — Elasticsearch en premier, repli sur le
// filtrage local quand l'index est injoignable. Une réponse dépassée par une
// requête plus récente du même client est jetée.
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	clientID := c.GetString("client_id")
	if clientID == "" {
		clientID = c.ClientIP()
	}

	results, err := sessionFor(clientID).Do(c.Request.Context(), query, limit)
	if err == services.ErrStaleResult {
		c.JSON(http.StatusOK, gin.H{"stale": true, "results": []gin.H{}})
		return
	}
	if err == nil {
		signImageURLs(c.Request.Context(), results)
		c.JSON(http.StatusOK, gin.H{
			"source":  "elastic",
			"results": results,
			"total":   len(results),
		})
		return
	}

	// Repli local : même prédicat de sous-chaîne que les pages du storefront
	products, loadErr := loadCatalog(c.Request.Context(), false)
	if loadErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recherche indisponible: " + loadErr.Error()})
		return
	}

	matched := catalog.Filter{Search: query}.Apply(products)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	origin := services.ImageOrigin()
	display := make([]catalog.Normalized, 0, len(matched))
	for _, p := range matched {
		display = append(display, catalog.Normalize(p, origin))
	}

	c.JSON(http.StatusOK, gin.H{
		"source":  "fallback",
		"results": display,
		"total":   len(display),
	})
}

// signImageURLs remplace les chemins d'images des hits Elastic par des URLs
// GET présignées MinIO.
func signImageURLs(ctx context.Context, results []map[string]interface{}) {
	for i := range results {
		paths, ok := results[i]["image_paths"].([]interface{})
		if !ok {
			continue
		}

		signed := []string{}
		for _, raw := range paths {
			path, ok := raw.(string)
			if !ok || path == "" {
				continue
			}
			if url, err := services.GenerateSignedURL(ctx, path, 24*time.Hour); err == nil {
				signed = append(signed, url)
			}
		}
		if len(signed) == 0 {
			signed = []string{catalog.PlaceholderImage}
		}
		results[i]["image_urls"] = signed
	}
}
