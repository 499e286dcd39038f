package catalog

import "ornella_back_end/internal/models"

const (
	GridPageSize = 24
	ListPageSize = 50

	pagerWindowSize = 5
)

// PageSizeForView retourne la taille de page selon le mode d'affichage.
func PageSizeForView(view string) int {
	if view == "list" {
		return ListPageSize
	}
	return GridPageSize
}

// TotalPages = ceil(total / size) ; une liste vide donne 0 page, pas une page vide.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate découpe la tranche de la page demandée (1-based). La page est
// re-bornée dans [1, TotalPages] pour qu'un changement de taille de page ne
// produise jamais une tranche hors limites. Retourne la tranche, la page
// effective et le nombre total de pages.
func Paginate(products []models.Product, page, size int) ([]models.Product, int, int) {
	pages := TotalPages(len(products), size)
	if pages == 0 {
		return []models.Product{}, 1, 0
	}

	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * size
	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], page, pages
}

// PageWindow calcule les numéros de page du pager : au plus 5 boutons, la page
// courante à peu près centrée, la fenêtre épinglée au début/à la fin du rang
// dans les deux premières / deux dernières pages.
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if total <= pagerWindowSize {
		window := make([]int, total)
		for i := range window {
			window[i] = i + 1
		}
		return window
	}

	start := current - pagerWindowSize/2
	if start < 1 {
		start = 1
	}
	if start > total-pagerWindowSize+1 {
		start = total - pagerWindowSize + 1
	}

	window := make([]int, pagerWindowSize)
	for i := range window {
		window[i] = start + i
	}
	return window
}
