package store

import (
	"context"
	"log"
	"time"

	"ornella_back_end/internal/models"
)

// WishlistStore gère la wishlist d'un client : sémantique d'ensemble, présence
// pure sans quantité.
type WishlistStore struct {
	persistence Persistence
	now         func() time.Time
}

func NewWishlistStore(p Persistence) *WishlistStore {
	return &WishlistStore{persistence: p, now: time.Now}
}

func wishlistKey(clientID string) string {
	return "wishlist:" + clientID
}

// Get relit la wishlist persistée, entrée absente ou corrompue ⇒ vide.
func (s *WishlistStore) Get(ctx context.Context, clientID string) []models.WishlistItem {
	var items []models.WishlistItem
	if err := s.persistence.Load(ctx, wishlistKey(clientID), &items); err != nil {
		if err != ErrNotFound {
			log.Printf("⚠️ Wishlist illisible pour %s, on repart à vide: %v", clientID, err)
		}
		return []models.WishlistItem{}
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items
}

// Add insère l'article s'il est absent ; re-ajouter un article déjà présent
// est un no-op signalé par une notice informative, pas une erreur.
func (s *WishlistStore) Add(ctx context.Context, clientID string, item models.WishlistItem) ([]models.WishlistItem, Notice, error) {
	items := s.Get(ctx, clientID)

	for _, existing := range items {
		if existing.ProductID == item.ProductID {
			return items, info("Déjà dans la wishlist"), nil
		}
	}

	item.AddedAt = s.now()
	items = append(items, item)

	if err := s.persistence.Save(ctx, wishlistKey(clientID), items); err != nil {
		return nil, None, err
	}
	return items, success("Produit ajouté à la wishlist"), nil
}

// Remove retire l'article ; notice uniquement si une entrée existait.
func (s *WishlistStore) Remove(ctx context.Context, clientID, productID string) ([]models.WishlistItem, Notice, error) {
	items := s.Get(ctx, clientID)

	kept := make([]models.WishlistItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return items, None, nil
	}

	if err := s.persistence.Save(ctx, wishlistKey(clientID), kept); err != nil {
		return nil, None, err
	}
	return kept, success("Produit retiré de la wishlist"), nil
}

// Contains teste la présence d'un produit.
func (s *WishlistStore) Contains(ctx context.Context, clientID, productID string) bool {
	for _, item := range s.Get(ctx, clientID) {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
