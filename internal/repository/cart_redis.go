package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/models"

	"github.com/redis/go-redis/v9"
)

// redisCartStore keeps each session cart as one JSON blob with a TTL, so
// abandoned carts expire on their own. Writes are read-modify-write;
// last-write-wins is acceptable for carts.
type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) CartStore {
	return &redisCartStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string { return fmt.Sprintf("cart:%s", sessionID) }

func (s *redisCartStore) load(ctx context.Context, sessionID string) (map[string]models.CartItem, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	cart := map[string]models.CartItem{}
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *redisCartStore) save(ctx context.Context, sessionID string, cart map[string]models.CartItem) error {
	if len(cart) == 0 {
		return s.client.Del(ctx, cartKey(sessionID)).Err()
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), raw, s.ttl).Err()
}

func (s *redisCartStore) Items(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items := make([]models.CartItem, 0, len(cart))
	for _, it := range cart {
		items = append(items, it)
	}
	return items, nil
}

func (s *redisCartStore) Get(ctx context.Context, sessionID, itemID string) (*models.CartItem, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	it, ok := cart[itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (s *redisCartStore) Put(ctx context.Context, sessionID string, item models.CartItem) error {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	cart[item.ID] = item
	return s.save(ctx, sessionID, cart)
}

func (s *redisCartStore) Remove(ctx context.Context, sessionID, itemID string) (bool, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if _, ok := cart[itemID]; !ok {
		return false, nil
	}
	delete(cart, itemID)
	return true, s.save(ctx, sessionID, cart)
}

func (s *redisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
