package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Persistence est l'adaptateur clé-valeur des stores panier/wishlist.
// Les collections sont sérialisées en JSON sous une clé par client, relues au
// démarrage d'une requête et réécrites à chaque mutation.
type Persistence interface {
	Load(ctx context.Context, key string, v interface{}) error
	Save(ctx context.Context, key string, v interface{}) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound signale une clé absente ; les stores dégradent vers une
// collection vide, jamais une erreur utilisateur.
var ErrNotFound = redis.Nil

// RedisPersistence persiste les blobs JSON dans Redis avec un TTL de 30 jours,
// même durée de vie que le cookie de session du client.
type RedisPersistence struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPersistence(client *redis.Client) *RedisPersistence {
	return &RedisPersistence{Client: client, TTL: 30 * 24 * time.Hour}
}

func (r *RedisPersistence) Load(ctx context.Context, key string, v interface{}) error {
	data, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), v)
}

func (r *RedisPersistence) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, r.TTL).Err()
}

func (r *RedisPersistence) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// MemoryPersistence est l'adaptateur en mémoire des tests : mêmes blobs JSON,
// aucun Redis requis.
type MemoryPersistence struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{data: make(map[string][]byte)}
}

func (m *MemoryPersistence) Load(ctx context.Context, key string, v interface{}) error {
	m.mu.Lock()
	data, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, v)
}

func (m *MemoryPersistence) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryPersistence) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Corrupt écrase une clé avec un blob invalide (tests de dégradation).
func (m *MemoryPersistence) Corrupt(key string) {
	m.mu.Lock()
	m.data[key] = []byte("{not json")
	m.mu.Unlock()
}
