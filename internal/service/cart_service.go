package service

import (
	"context"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"

	"github.com/google/uuid"
)

type CartService struct {
	catalog repository.ProductRepo
	store   repository.CartStore
}

func NewCartService(catalog repository.ProductRepo, store repository.CartStore) *CartService {
	return &CartService{catalog: catalog, store: store}
}

// Items returns the cart contents together with the derived subtotal.
// The subtotal is never stored.
func (s *CartService) Items(ctx context.Context, sessionID string) ([]models.CartItem, int64, error) {
	items, err := s.store.Items(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	return items, Subtotal(items), nil
}

// Add puts a product into the cart. The cart holds at most one item per
// product: adding an existing product increments its quantity instead of
// inserting a second row. The product snapshot is resolved at add time.
func (s *CartService) Add(ctx context.Context, sessionID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	items, err := s.store.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ProductID == productID {
			it.Quantity += quantity
			if err := s.store.Put(ctx, sessionID, it); err != nil {
				return nil, err
			}
			return &it, nil
		}
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		Product:   *product,
	}
	if err := s.store.Put(ctx, sessionID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update sets an item quantity. Values below 1 are clamped to 1; removal
// goes through Remove, never through this path.
func (s *CartService) Update(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	item, err := s.store.Get(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	item.Quantity = quantity
	if err := s.store.Put(ctx, sessionID, *item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, sessionID, itemID string) error {
	ok, err := s.store.Remove(ctx, sessionID, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// Subtotal sums price × quantity over the given items.
func Subtotal(items []models.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Product.PriceCents * int64(it.Quantity)
	}
	return total
}
