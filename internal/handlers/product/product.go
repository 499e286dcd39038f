package product

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/cache"
	"ornella_back_end/internal/catalog"
	"ornella_back_end/internal/database"
	"ornella_back_end/internal/models"
	"ornella_back_end/internal/services"
)

// loadCatalog retourne la liste complète du catalogue client, depuis Redis si
// possible, sinon depuis ScyllaDB (et remet en cache). refresh=true force la
// relecture (le compteur de rafraîchissement manuel du storefront).
func loadCatalog(ctx context.Context, refresh bool) ([]models.Product, error) {
	if !refresh {
		if products, ok := cache.GetProductList(ctx); ok {
			return products, nil
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	products, err := collectProducts(database.AllProductsQuery(session).Iter())
	if err != nil {
		return nil, err
	}

	cache.SetProductList(ctx, products)
	return products, nil
}

// bindQuery lit la configuration de requête catalogue commune à toutes les
// pages (collections, recherche, pages catégorie).
func bindQuery(c *gin.Context) catalog.Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return catalog.Query{
		Category: c.DefaultQuery("category", "all"),
		Metal:    c.DefaultQuery("metal", "all"),
		Search:   c.Query("q"),
		Sort:     catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortFeatured))),
		Page:     page,
		View:     c.DefaultQuery("view", "grid"),
	}
}

func respondPage(c *gin.Context, res catalog.Result) {
	origin := services.ImageOrigin()
	display := make([]catalog.Normalized, 0, len(res.Items))
	for _, p := range res.Items {
		display = append(display, catalog.Normalize(p, origin))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": res.Items,
		"display":  display,
		"pagination": gin.H{
			"page":        res.Page,
			"page_size":   res.PageSize,
			"total":       res.Total,
			"total_pages": res.TotalPages,
			"window":      res.PageWindow,
		},
	})
}

// GET /api/products — liste filtrée/triée/paginée ; limit optionnel plafonne
// la liste avant pagination (le paramètre de l'API legacy).
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()
	refresh := c.Query("refresh") == "1"

	products, err := loadCatalog(ctx, refresh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue: " + err.Error()})
		return
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(products) {
			products = products[:limit]
		}
	}

	respondPage(c, catalog.Run(products, bindQuery(c)))
}

// GET /api/products/category/:category — même pipeline que la liste, la
// catégorie venant du chemin (pages catégorie du storefront).
func GetProductsByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := loadCatalog(ctx, c.Query("refresh") == "1")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue: " + err.Error()})
		return
	}

	q := bindQuery(c)
	q.Category = c.Param("category")

	respondPage(c, catalog.Run(products, q))
}

// FetchByKey récupère un produit par clé canonique : lecture directe par
// lot_no, sinon parcours du catalogue pour les clés historiques en ItemNo.
func FetchByKey(ctx context.Context, key string) (*models.Product, error) {
	if p, ok := cache.GetProduct(ctx, key); ok {
		return p, nil
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := database.ProductByLotQuery(session, key).Iter()
	var p models.Product
	if scanProduct(iter, &p) {
		iter.Close()
		cache.SetProduct(ctx, p)
		return &p, nil
	}
	iter.Close()

	// Clé historique : certaines pages identifient encore par ItemNo
	products, err := loadCatalog(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Key() == key || products[i].ItemNo == key {
			cache.SetProduct(ctx, products[i])
			return &products[i], nil
		}
	}

	return nil, nil
}

// GET /api/products/:itemId — fiche produit / quick view.
func GetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := FetchByKey(ctx, c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}
	if p == nil || p.Removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": p,
		"display": catalog.Normalize(*p, services.ImageOrigin()),
	})
}

// GET /api/products/filters — métadonnées de filtrage : catégories avec
// compteurs (même prédicat que le filtrage), fourchette de prix, métaux.
func GetProductFilters(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := loadCatalog(ctx, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue: " + err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var slugs []string
	categories := []gin.H{}
	iter := session.Query("SELECT category_id, name, slug FROM categories").Iter()
	var cat models.Category
	for iter.Scan(&cat.ID, &cat.Name, &cat.Slug) {
		slugs = append(slugs, cat.Slug)
		categories = append(categories, gin.H{"id": cat.ID.String(), "name": cat.Name, "slug": cat.Slug})
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégories"})
		return
	}

	counts := catalog.CountByCategory(products, slugs)
	for _, entry := range categories {
		entry["count"] = counts[entry["slug"].(string)]
	}

	var minPrice, maxPrice float64
	gold, silver := 0, 0
	for i, p := range products {
		price := catalog.BasePrice(p)
		if i == 0 || price < minPrice {
			minPrice = price
		}
		if price > maxPrice {
			maxPrice = price
		}
		if catalog.MatchesMetal(p, "g") {
			gold++
		}
		if catalog.MatchesMetal(p, "s") {
			silver++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"price_range": gin.H{
			"min": minPrice,
			"max": maxPrice,
		},
		"metals": gin.H{
			"gold":   gold,
			"silver": silver,
		},
	})
}
