package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ornella_back_end/internal/models"
)

func makeProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{LotNo: fmt.Sprintf("L-%03d", i+1)}
	}
	return products
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, size, want int
	}{
		{0, 24, 0},
		{1, 24, 1},
		{24, 24, 1},
		{25, 24, 2},
		{100, 50, 2},
		{101, 50, 3},
		{10, 0, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestPaginateEmptyListGivesZeroPages(t *testing.T) {
	t.Parallel()

	items, page, pages := Paginate(nil, 1, 24)

	assert.Empty(t, items)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, pages)
}

// Invariant : len(slice) = min(size, total − (p−1)·size).
func TestPaginateSliceLengths(t *testing.T) {
	t.Parallel()

	products := makeProducts(55)

	tests := []struct {
		page, size, wantLen int
		first               string
	}{
		{1, 24, 24, "L-001"},
		{2, 24, 24, "L-025"},
		{3, 24, 7, "L-049"},
		{1, 50, 50, "L-001"},
		{2, 50, 5, "L-051"},
	}

	for _, tc := range tests {
		items, page, _ := Paginate(products, tc.page, tc.size)
		assert.Len(t, items, tc.wantLen, "page=%d size=%d", tc.page, tc.size)
		assert.Equal(t, tc.page, page)
		assert.Equal(t, tc.first, items[0].LotNo)
	}
}

// Un changement de taille de page re-borne la page courante au lieu de
// produire une tranche hors limites.
func TestPaginateClampsOutOfRangePage(t *testing.T) {
	t.Parallel()

	products := makeProducts(30)

	items, page, pages := Paginate(products, 9, 24)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, pages)
	assert.Len(t, items, 6)

	items, page, _ = Paginate(products, 0, 24)
	assert.Equal(t, 1, page)
	assert.Len(t, items, 24)
}

func TestPageSizeForView(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ListPageSize, PageSizeForView("list"))
	assert.Equal(t, GridPageSize, PageSizeForView("grid"))
	assert.Equal(t, GridPageSize, PageSizeForView(""))
}

func TestPageWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"no pages", 1, 0, nil},
		{"fewer pages than window", 2, 3, []int{1, 2, 3}},
		{"pinned at start", 1, 10, []int{1, 2, 3, 4, 5}},
		{"still pinned at page two", 2, 10, []int{1, 2, 3, 4, 5}},
		{"centered in the middle", 6, 10, []int{4, 5, 6, 7, 8}},
		{"pinned at end", 10, 10, []int{6, 7, 8, 9, 10}},
		{"still pinned at second to last", 9, 10, []int{6, 7, 8, 9, 10}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, PageWindow(tc.current, tc.total))
		})
	}
}
