package models

import "time"

// WishlistItem est une présence pure (pas de quantité), identité par product_id.
type WishlistItem struct {
	ProductID   string    `json:"product_id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	AddedAt     time.Time `json:"added_at"`
}
