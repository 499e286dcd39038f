package store

import (
	"context"
	"log"

	"ornella_back_end/internal/models"
)

// CartStore gère le panier d'un client : identité par clé produit canonique,
// quantité entière ≥ 1 par ligne. Construit explicitement avec son adaptateur
// de persistance pour rester testable sans Redis.
type CartStore struct {
	persistence Persistence
}

func NewCartStore(p Persistence) *CartStore {
	return &CartStore{persistence: p}
}

func cartKey(clientID string) string {
	return "cart:" + clientID
}

// Get relit le panier persisté. Une entrée absente ou corrompue dégrade vers
// un panier vide, jamais une erreur.
func (s *CartStore) Get(ctx context.Context, clientID string) []models.CartItem {
	var items []models.CartItem
	if err := s.persistence.Load(ctx, cartKey(clientID), &items); err != nil {
		if err != ErrNotFound {
			log.Printf("⚠️ Panier illisible pour %s, on repart à vide: %v", clientID, err)
		}
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

// Add incrémente la quantité si la ligne existe déjà, sinon insère avec
// quantité 1. La notice distingue les deux cas.
func (s *CartStore) Add(ctx context.Context, clientID string, item models.CartItem) ([]models.CartItem, Notice, error) {
	items := s.Get(ctx, clientID)

	notice := success("Produit ajouté au panier")
	found := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity++
			notice = success("Quantité mise à jour")
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		items = append(items, item)
	}

	if err := s.persistence.Save(ctx, cartKey(clientID), items); err != nil {
		return nil, None, err
	}
	return items, notice, nil
}

// UpdateQuantity remplace la quantité d'une ligne. qty ≤ 0 est ignoré en
// silence (no-op, pas une erreur).
func (s *CartStore) UpdateQuantity(ctx context.Context, clientID, productID string, qty int) ([]models.CartItem, Notice, error) {
	items := s.Get(ctx, clientID)
	if qty <= 0 {
		return items, None, nil
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			if err := s.persistence.Save(ctx, cartKey(clientID), items); err != nil {
				return nil, None, err
			}
			break
		}
	}
	return items, None, nil
}

// Remove supprime la ligne correspondante ; la notice « supprimé » n'est émise
// que si une ligne existait.
func (s *CartStore) Remove(ctx context.Context, clientID, productID string) ([]models.CartItem, Notice, error) {
	items := s.Get(ctx, clientID)

	kept := make([]models.CartItem, 0, len(items))
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

	if err := s.persistence.Save(ctx, cartKey(clientID), kept); err != nil {
		return nil, None, err
	}
	return kept, success("Produit supprimé du panier"), nil
}

// Clear vide le panier sans condition.
func (s *CartStore) Clear(ctx context.Context, clientID string) error {
	return s.persistence.Delete(ctx, cartKey(clientID))
}

// Count = somme des quantités, recalculée à chaque lecture.
func Count(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Total = somme des prix × quantités, recalculée à chaque lecture.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
