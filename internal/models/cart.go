package models

// CartItem est un instantané du produit au moment de l'ajout ; la quantité
// est toujours ≥ 1, retirer la ligne passe par l'opération de suppression.
type CartItem struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"image_url"`
}
