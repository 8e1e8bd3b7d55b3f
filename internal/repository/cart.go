package repository

import (
	"context"
	"sync"

	"github.com/danieltechTI/ReiBurguer/internal/models"
)

// CartStore holds per-session carts. Implementations may serialize
// concurrent writes or apply last-write-wins; the only property checkout
// depends on is "what is visible at checkout time".
type CartStore interface {
	Items(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Get(ctx context.Context, sessionID, itemID string) (*models.CartItem, error)
	Put(ctx context.Context, sessionID string, item models.CartItem) error
	Remove(ctx context.Context, sessionID, itemID string) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}

type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]map[string]models.CartItem
}

// NewMemoryCartStore is the single-process default.
func NewMemoryCartStore() CartStore {
	return &memoryCartStore{carts: make(map[string]map[string]models.CartItem)}
}

func (s *memoryCartStore) Items(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart := s.carts[sessionID]
	items := make([]models.CartItem, 0, len(cart))
	for _, it := range cart {
		items = append(items, it)
	}
	return items, nil
}

func (s *memoryCartStore) Get(ctx context.Context, sessionID, itemID string) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.carts[sessionID][itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (s *memoryCartStore) Put(ctx context.Context, sessionID string, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = make(map[string]models.CartItem)
		s.carts[sessionID] = cart
	}
	cart[item.ID] = item
	return nil
}

func (s *memoryCartStore) Remove(ctx context.Context, sessionID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		return false, nil
	}
	if _, ok := cart[itemID]; !ok {
		return false, nil
	}
	delete(cart, itemID)
	if len(cart) == 0 {
		delete(s.carts, sessionID)
	}
	return true, nil
}

func (s *memoryCartStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
