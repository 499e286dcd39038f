package product

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ornella_back_end/internal/cache"
	"ornella_back_end/internal/database"
	"ornella_back_end/internal/services"
	"ornella_back_end/internal/utils"
)

// DELETE /api/products/admin/:itemId — retrait soft du catalogue client :
// le produit est marqué retiré et désindexé, jamais effacé de la base.
func DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	itemID := c.Param("itemId")

	p, err := FetchByKey(ctx, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur connexion base de données"})
		return
	}
	if p == nil {
		utils.LogFailedAction(c, "product.delete", "product", itemID, "Produit introuvable")
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Produit introuvable"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(
		"UPDATE products SET removed = true, updated_at = ? WHERE lot_no = ?",
		time.Now(), p.LotNo,
	).Exec(); err != nil {
		utils.LogFailedAction(c, "product.delete", "product", itemID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lors de la suppression"})
		return
	}

	services.DeindexProduct(p.Key())
	cache.InvalidateProduct(ctx, p.Key())
	utils.LogAction(c, "product.delete", "product", p.Key(), p, nil)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produit retiré du catalogue",
	})
}

// PUT /api/products/admin/:itemId/price — corps {displayPrice, discountPrice}.
// Validation avant toute écriture : displayPrice requis et ≥ 0, discountPrice
// (si présent) strictement inférieur à displayPrice.
func UpdatePrice(c *gin.Context) {
	ctx := c.Request.Context()
	itemID := c.Param("itemId")

	var input struct {
		DisplayPrice  *float64 `json:"displayPrice"`
		DiscountPrice *float64 `json:"discountPrice"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if input.DisplayPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Le champ 'displayPrice' est obligatoire"})
		return
	}
	if *input.DisplayPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Le prix affiché doit être ≥ 0"})
		return
	}
	if input.DiscountPrice != nil {
		if *input.DiscountPrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Le prix remisé doit être ≥ 0"})
			return
		}
		if *input.DiscountPrice >= *input.DisplayPrice {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Le prix remisé doit être strictement inférieur au prix affiché"})
			return
		}
	}

	p, err := FetchByKey(ctx, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur connexion base de données"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Produit introuvable"})
		return
	}

	oldValue := gin.H{"displayPrice": p.DisplayPrice, "discountPrice": p.DiscountPrice}

	var discount float64
	if input.DiscountPrice != nil {
		discount = *input.DiscountPrice
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(
		"UPDATE products SET display_price = ?, discount_price = ?, updated_at = ? WHERE lot_no = ?",
		*input.DisplayPrice, discount, time.Now(), p.LotNo,
	).Exec(); err != nil {
		utils.LogFailedAction(c, "product.price", "product", itemID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lors de la mise à jour du prix"})
		return
	}

	p.DisplayPrice = *input.DisplayPrice
	p.DiscountPrice = discount

	go services.IndexProduct(*p)
	cache.InvalidateProduct(ctx, p.Key())
	utils.LogAction(c, "product.price", "product", p.Key(), oldValue, input)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prix mis à jour avec succès",
	})
}
