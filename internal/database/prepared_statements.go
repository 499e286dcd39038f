package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

// Colonnes produit, dans l'ordre attendu par le scan côté handlers.
const ProductColumns = `lot_no, item_no, description, sub_category, sub_cat_id, gors,
	display_price, price, o_amt, offer_price, discount_price,
	g_wt, tot_wt, tunch, sold, removed, image_paths, created_at, updated_at`

const (
	stmtSelectAllProducts  = "SELECT " + ProductColumns + " FROM products"
	stmtSelectProductByLot = stmtSelectAllProducts + " WHERE lot_no = ?"
)

var warmupOnce sync.Once

// AllProductsQuery construit la requête de lecture complète du catalogue.
// Une *gocql.Query n'est pas sûre en usage concurrent : chaque appel reçoit
// sa propre instance, gocql met en cache le prepared statement au niveau de
// la session (clé = texte de la requête).
func AllProductsQuery(session *gocql.Session) *gocql.Query {
	return session.Query(stmtSelectAllProducts)
}

// ProductByLotQuery construit la requête de lecture d'un produit par lot_no.
func ProductByLotQuery(session *gocql.Session, lotNo string) *gocql.Query {
	return session.Query(stmtSelectProductByLot, lotNo)
}

// WarmupPreparedStatements exécute une fois chaque requête chaude au démarrage
// pour que gocql prépare les statements avant le premier appel client.
func WarmupPreparedStatements() {
	warmupOnce.Do(func() {
		session, err := GetCatalogSession()
		if err != nil {
			log.Printf("⚠️ Impossible de préparer les statements: %v", err)
			return
		}

		if err := AllProductsQuery(session).PageSize(1).Iter().Close(); err != nil {
			log.Printf("⚠️ Préparation lecture catalogue: %v", err)
		}
		if err := ProductByLotQuery(session, "").Iter().Close(); err != nil {
			log.Printf("⚠️ Préparation lecture par lot: %v", err)
		}

		log.Println("✅ Prepared statements initialisés")
	})
}
