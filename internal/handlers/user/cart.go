package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/catalog"
	"ornella_back_end/internal/models"
	"ornella_back_end/internal/services"
	"ornella_back_end/internal/store"
)

// ProductLookup résout un produit par clé canonique ; injectée pour tester
// les handlers sans ScyllaDB.
type ProductLookup func(ctx context.Context, key string) (*models.Product, error)

// CartHandler expose le panier d'un client. Le store est construit
// explicitement et injecté, la persistance est un adaptateur.
type CartHandler struct {
	carts  *store.CartStore
	lookup ProductLookup
}

func NewCartHandler(carts *store.CartStore, lookup ProductLookup) *CartHandler {
	return &CartHandler{carts: carts, lookup: lookup}
}

func clientID(c *gin.Context) (string, bool) {
	id := c.GetString("client_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session client manquante"})
		return "", false
	}
	return id, true
}

func cartResponse(items []models.CartItem, notice store.Notice) gin.H {
	resp := gin.H{
		"items":      items,
		"cart_count": store.Count(items),
		"cart_total": store.Total(items),
	}
	if notice != store.None {
		resp["notice"] = notice
	}
	return resp
}

// GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	items := h.carts.Get(c.Request.Context(), id)
	c.JSON(http.StatusOK, cartResponse(items, store.None))
}

// POST /api/cart/add — corps {productId} ; une ligne existante voit sa
// quantité incrémentée de 1, sinon insertion avec quantité 1.
func (h *CartHandler) Add(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	p, err := h.lookup(ctx, input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}
	if p == nil || p.Removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	// Le client paie le prix affiché : l'offre quand elle est active
	price := catalog.BasePrice(*p)
	if catalog.OfferActive(*p) {
		price = catalog.OfferPrice(*p)
	}

	imageURL := catalog.PlaceholderImage
	if len(p.Images) > 0 {
		imageURL = catalog.ResolveImageURL(services.ImageOrigin(), p.Images[0].FilePath)
	}

	items, notice, err := h.carts.Add(ctx, id, models.CartItem{
		ProductID:   p.Key(),
		Description: p.Description,
		Price:       price,
		ImageURL:    imageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items, notice))
}

// PUT /api/cart/:productId — corps {quantity} ; quantity ≤ 0 est un no-op
// silencieux, pas une erreur.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	items, notice, err := h.carts.UpdateQuantity(c.Request.Context(), id, c.Param("productId"), input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items, notice))
}

// DELETE /api/cart/:productId — la notice « supprimé » n'apparaît que si une
// ligne existait.
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	items, notice, err := h.carts.Remove(c.Request.Context(), id, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items, notice))
}

// DELETE /api/cart/clear — vide le panier sans condition.
func (h *CartHandler) Clear(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	if err := h.carts.Clear(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès", "items": []models.CartItem{}})
}
