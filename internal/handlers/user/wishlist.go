package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/catalog"
	"ornella_back_end/internal/models"
	"ornella_back_end/internal/services"
	"ornella_back_end/internal/store"
)

// WishlistHandler expose la wishlist d'un client, sémantique d'ensemble.
type WishlistHandler struct {
	wishlists *store.WishlistStore
	lookup    ProductLookup
}

func NewWishlistHandler(wishlists *store.WishlistStore, lookup ProductLookup) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists, lookup: lookup}
}

func wishlistResponse(items []models.WishlistItem, notice store.Notice) gin.H {
	resp := gin.H{"items": items}
	if notice != store.None {
		resp["notice"] = notice
	}
	return resp
}

// GET /api/wishlist
func (h *WishlistHandler) Get(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	items := h.wishlists.Get(c.Request.Context(), id)
	c.JSON(http.StatusOK, wishlistResponse(items, store.None))
}

// POST /api/wishlist — corps {productId} ; re-ajouter un article déjà présent
// est un no-op avec notice informative.
func (h *WishlistHandler) Add(c *gin.Context) {
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

	imageURL := catalog.PlaceholderImage
	if len(p.Images) > 0 {
		imageURL = catalog.ResolveImageURL(services.ImageOrigin(), p.Images[0].FilePath)
	}

	items, notice, err := h.wishlists.Add(ctx, id, models.WishlistItem{
		ProductID:   p.Key(),
		Description: p.Description,
		Price:       catalog.BasePrice(*p),
		ImageURL:    imageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde wishlist"})
		return
	}

	c.JSON(http.StatusOK, wishlistResponse(items, notice))
}

// DELETE /api/wishlist/:productId
func (h *WishlistHandler) Remove(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	items, notice, err := h.wishlists.Remove(c.Request.Context(), id, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde wishlist"})
		return
	}

	c.JSON(http.StatusOK, wishlistResponse(items, notice))
}

// GET /api/wishlist/contains/:productId — pour l'icône cœur des cartes produit.
func (h *WishlistHandler) Contains(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id":  c.Param("productId"),
		"in_wishlist": h.wishlists.Contains(c.Request.Context(), id, c.Param("productId")),
	})
}
