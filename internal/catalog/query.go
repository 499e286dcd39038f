package catalog

import "ornella_back_end/internal/models"

// Query est la configuration unique de requête catalogue, utilisée à
// l'identique par toutes les pages (collections, recherche, pages catégorie)
// pour qu'elles partagent une seule notion de « ce qui matche ».
type Query struct {
	Category string
	Metal    string
	Search   string
	Sort     SortKey
	Page     int
	View     string
}

// Result est la page de résultats avec les métadonnées du pager.
type Result struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	PageWindow []int            `json:"page_window"`
}

// Run applique filtre → tri → pagination sur une copie de la liste source
// (l'ordre « featured » de l'appelant n'est jamais modifié).
func Run(products []models.Product, q Query) Result {
	filtered := Filter{
		Category: q.Category,
		Metal:    q.Metal,
		Search:   q.Search,
	}.Apply(products)

	Sort(filtered, q.Sort)

	size := PageSizeForView(q.View)
	items, page, pages := Paginate(filtered, q.Page, size)

	return Result{
		Items:      items,
		Total:      len(filtered),
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
		PageWindow: PageWindow(page, pages),
	}
}
