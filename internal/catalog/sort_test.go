package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ornella_back_end/internal/models"
)

func keys(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Key())
	}
	return out
}

// Deux produits [{id:1, price:100}, {id:2, price:50}] dans les deux sens.
func TestSortByPrice(t *testing.T) {
	t.Parallel()

	source := []models.Product{
		{LotNo: "1", DisplayPrice: 100},
		{LotNo: "2", DisplayPrice: 50},
	}

	low := append([]models.Product(nil), source...)
	Sort(low, SortPriceLow)
	assert.Equal(t, []string{"2", "1"}, keys(low))

	high := append([]models.Product(nil), source...)
	Sort(high, SortPriceHigh)
	assert.Equal(t, []string{"1", "2"}, keys(high))
}

func TestSortFeaturedKeepsSourceOrder(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{LotNo: "3", DisplayPrice: 10},
		{LotNo: "1", DisplayPrice: 30},
		{LotNo: "2", DisplayPrice: 20},
	}

	Sort(products, SortFeatured)
	assert.Equal(t, []string{"3", "1", "2"}, keys(products))

	// Une clé inconnue vaut featured.
	Sort(products, SortKey("whatever"))
	assert.Equal(t, []string{"3", "1", "2"}, keys(products))
}

func TestSortByName(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{LotNo: "1", Description: "Ruby Ring"},
		{LotNo: "2", Description: ""},
		{LotNo: "3", Description: "amber pendant"},
	}

	Sort(products, SortName)

	// Description absente (vide) en tête, puis ordre lexicographique locale.
	assert.Equal(t, []string{"2", "3", "1"}, keys(products))
}

func TestSortMissingPriceTreatedAsZero(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{LotNo: "1", DisplayPrice: 40},
		{LotNo: "2"},
		{LotNo: "3", OAmt: 15},
	}

	Sort(products, SortPriceLow)
	assert.Equal(t, []string{"2", "3", "1"}, keys(products))
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{LotNo: "a", DisplayPrice: 25},
		{LotNo: "b", DisplayPrice: 25},
		{LotNo: "c", DisplayPrice: 10},
	}

	Sort(products, SortPriceLow)
	assert.Equal(t, []string{"c", "a", "b"}, keys(products))
}
