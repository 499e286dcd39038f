package catalog

import (
	"math"
	"strings"

	"ornella_back_end/internal/models"
)

const (
	// Valeurs de repli quand le backend renvoie des champs absents.
	PlaceholderImage     = "/assets/placeholder-jewelry.jpg"
	DefaultCategoryLabel = "Jewelry Collection"
	DefaultTitle         = "N/A"

	LabelInStock = "In Stock"
	LabelSoldOut = "Sold Out"
)

// Normalized est la vue prête à afficher d'un produit : un seul prix résolu,
// une offre active ou rien, des URLs d'images absolues. La normalisation
// n'échoue jamais, un champ absent dégrade vers une valeur par défaut.
type Normalized struct {
	Key          string   `json:"key"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	OfferPrice   float64  `json:"offer_price,omitempty"`
	OfferActive  bool     `json:"offer_active"`
	DiscountPct  int      `json:"discount_pct"`
	ImageURLs    []string `json:"image_urls"`
	Availability string   `json:"availability"`
}

// BasePrice résout le prix affiché : premier champ strictement positif parmi
// DisplayPrice, Price, OAmt. Tout absent ⇒ 0.
func BasePrice(p models.Product) float64 {
	for _, v := range []float64{p.DisplayPrice, p.Price, p.OAmt} {
		if v > 0 {
			return v
		}
	}
	return 0
}

// OfferPrice résout le prix promotionnel brut (OfferPrice puis DiscountPrice).
func OfferPrice(p models.Product) float64 {
	if p.OfferPrice > 0 {
		return p.OfferPrice
	}
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return 0
}

// OfferActive : une promotion n'est active que si elle est présente, positive
// et strictement inférieure au prix de base résolu.
func OfferActive(p models.Product) bool {
	base := BasePrice(p)
	offer := OfferPrice(p)
	return offer > 0 && offer < base
}

// DiscountPercent = round((base − offre) / base × 100), 0 si pas d'offre active.
func DiscountPercent(p models.Product) int {
	if !OfferActive(p) {
		return 0
	}
	base := BasePrice(p)
	offer := OfferPrice(p)
	return int(math.Round((base - offer) / base * 100))
}

// ResolveImageURL matérialise une URL d'image : chemin vide ⇒ placeholder,
// URL absolue (préfixe http) inchangée, chemin relatif joint à l'origine.
func ResolveImageURL(origin, path string) string {
	if path == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return strings.TrimSuffix(origin, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Normalize produit la vue affichable. origin est l'origine fixe du serveur
// d'images, utilisée pour les chemins relatifs.
func Normalize(p models.Product, origin string) Normalized {
	n := Normalized{
		Key:          p.Key(),
		Title:        p.Description,
		Category:     p.SubCategory,
		Price:        BasePrice(p),
		DiscountPct:  DiscountPercent(p),
		Availability: LabelInStock,
	}

	if n.Title == "" {
		n.Title = DefaultTitle
	}
	if n.Category == "" {
		n.Category = DefaultCategoryLabel
	}
	if OfferActive(p) {
		n.OfferPrice = OfferPrice(p)
		n.OfferActive = true
	}
	if strings.EqualFold(p.Sold, "Y") {
		n.Availability = LabelSoldOut
	}

	if len(p.Images) == 0 {
		n.ImageURLs = []string{PlaceholderImage}
	} else {
		n.ImageURLs = make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			n.ImageURLs = append(n.ImageURLs, ResolveImageURL(origin, img.FilePath))
		}
	}

	return n
}
