package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ornella_back_end/internal/models"
)

func TestRunAppliesFilterSortPaginate(t *testing.T) {
	t.Parallel()

	products := []models.Product{
		{LotNo: "1", Description: "Gold Ring", SubCategory: "Rings", GorS: "G", DisplayPrice: 300},
		{LotNo: "2", Description: "Silver Ring", SubCategory: "Rings", GorS: "S", DisplayPrice: 80},
		{LotNo: "3", Description: "Gold Ring Deluxe", SubCategory: "Rings", GorS: "G", DisplayPrice: 150},
		{LotNo: "4", Description: "Gold Necklace", SubCategory: "Necklaces", GorS: "G", DisplayPrice: 400},
	}

	res := Run(products, Query{Category: "ring", Metal: "g", Sort: SortPriceLow, Page: 1})

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, []int{1}, res.PageWindow)
	assert.Equal(t, "3", res.Items[0].LotNo)
	assert.Equal(t, "1", res.Items[1].LotNo)

	// La liste source n'est pas réordonnée.
	assert.Equal(t, "1", products[0].LotNo)
}

func TestRunEmptyResult(t *testing.T) {
	t.Parallel()

	products := []models.Product{{LotNo: "1", SubCategory: "Rings"}}

	res := Run(products, Query{Category: "bangle", Page: 1})

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.TotalPages)
	assert.Nil(t, res.PageWindow)
}

func TestRunDefaultsToGridPageSize(t *testing.T) {
	t.Parallel()

	res := Run(makeProducts(60), Query{Page: 1})
	assert.Len(t, res.Items, GridPageSize)
	assert.Equal(t, 3, res.TotalPages)

	res = Run(makeProducts(60), Query{Page: 1, View: "list"})
	assert.Len(t, res.Items, ListPageSize)
	assert.Equal(t, 2, res.TotalPages)
}
