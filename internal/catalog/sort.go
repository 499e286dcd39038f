package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ornella_back_end/internal/models"
)

// SortKey identifie l'un des quatre ordres de tri du storefront.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// Sort trie les produits en place. "featured" est l'ordre identité (aucun
// réarrangement), le tri par prix utilise le prix résolu (absent ⇒ 0), le tri
// par nom est lexicographique selon la locale (description absente en tête).
// Le tri est stable : les clés égales gardent leur ordre d'origine.
func Sort(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return BasePrice(products[i]) < BasePrice(products[j])
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return BasePrice(products[i]) > BasePrice(products[j])
		})
	case SortName:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Description, products[j].Description) < 0
		})
	default:
		// featured : on garde l'ordre source
	}
}
