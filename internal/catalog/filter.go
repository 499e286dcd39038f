package catalog

import (
	"strings"

	"ornella_back_end/internal/models"
)

// Filter regroupe les trois dimensions de filtrage du storefront.
// Une dimension absente ("all", "All" ou vide) est toujours vraie,
// les dimensions présentes sont combinées en ET.
type Filter struct {
	Category string
	Metal    string
	Search   string
}

// Table singulier/pluriel des catégories : un produit matche une catégorie si
// l'un de description / sous-catégorie / code contient la catégorie OU son
// synonyme singulier/pluriel.
var categorySynonyms = map[string]string{
	"ring":       "rings",
	"rings":      "ring",
	"necklace":   "necklaces",
	"necklaces":  "necklace",
	"earring":    "earrings",
	"earrings":   "earring",
	"bracelet":   "bracelets",
	"bracelets":  "bracelet",
	"pendant":    "pendants",
	"pendants":   "pendant",
	"bangle":     "bangles",
	"bangles":    "bangle",
	"chain":      "chains",
	"chains":     "chain",
	"anklet":     "anklets",
	"anklets":    "anklet",
}

func isWildcard(token string) bool {
	return token == "" || strings.EqualFold(token, "all")
}

// MatchesCategory teste la catégorie par sous-chaîne (insensible à la casse)
// sur description, sous-catégorie et numéro d'article, plus la table de
// synonymes singulier/pluriel.
func MatchesCategory(p models.Product, category string) bool {
	if isWildcard(category) {
		return true
	}

	needle := strings.ToLower(category)
	haystacks := []string{
		strings.ToLower(p.Description),
		strings.ToLower(p.SubCategory),
		strings.ToLower(p.ItemNo),
	}

	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
		if syn, ok := categorySynonyms[needle]; ok && strings.Contains(h, syn) {
			return true
		}
	}
	return false
}

// MatchesMetal compare le jeton sélectionné au code métal (G or / S argent),
// exact et insensible à la casse.
func MatchesMetal(p models.Product, metal string) bool {
	if isWildcard(metal) {
		return true
	}
	return strings.EqualFold(p.GorS, metal)
}

// MatchesSearch est le repli client de la recherche plein texte : sous-chaîne
// insensible à la casse sur description, sous-catégorie, numéro d'article et
// numéro de lot.
func MatchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)
	for _, h := range []string{p.Description, p.SubCategory, p.ItemNo, p.LotNo} {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// Matches combine les trois dimensions en ET.
func (f Filter) Matches(p models.Product) bool {
	return MatchesCategory(p, f.Category) &&
		MatchesMetal(p, f.Metal) &&
		MatchesSearch(p, f.Search)
}

// Apply retourne les produits retenus par le filtre, dans l'ordre d'origine.
func (f Filter) Apply(products []models.Product) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CountByCategory calcule les compteurs de catégories avec le même prédicat
// que le filtrage, pour que les pages affichent des totaux cohérents.
func CountByCategory(products []models.Product, categories []string) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, cat := range categories {
		for _, p := range products {
			if MatchesCategory(p, cat) {
				counts[cat]++
			}
		}
	}
	return counts
}
