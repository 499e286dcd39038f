package product

import (
	"time"

	"github.com/gocql/gocql"

	"ornella_back_end/internal/models"
)

// scanProduct lit une ligne produit dans l'ordre de database.ProductColumns.
// Retourne false quand l'itérateur est épuisé.
func scanProduct(iter *gocql.Iter, p *models.Product) bool {
	var (
		paths     []string
		createdAt time.Time
		updatedAt time.Time
	)

	*p = models.Product{}
	ok := iter.Scan(
		&p.LotNo, &p.ItemNo, &p.Description, &p.SubCategory, &p.SubCatID, &p.GorS,
		&p.DisplayPrice, &p.Price, &p.OAmt, &p.OfferPrice, &p.DiscountPrice,
		&p.GWt, &p.TotWt, &p.Tunch, &p.Sold, &p.Removed, &paths, &createdAt, &updatedAt,
	)
	if !ok {
		return false
	}

	p.SetImagePaths(paths)
	if !createdAt.IsZero() {
		p.CreatedAt = &createdAt
	}
	if !updatedAt.IsZero() {
		p.UpdatedAt = &updatedAt
	}
	return true
}

// collectProducts draine un itérateur en écartant les produits retirés du
// catalogue client.
func collectProducts(iter *gocql.Iter) ([]models.Product, error) {
	var products []models.Product
	var p models.Product

	for scanProduct(iter, &p) {
		if p.Removed {
			continue
		}
		products = append(products, p)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}
