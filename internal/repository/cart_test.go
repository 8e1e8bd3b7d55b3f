package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"

	"github.com/google/uuid"
)

func storeItem(productID string, qty int) models.CartItem {
	return models.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  qty,
		Product:   models.Product{ID: productID, Name: productID, PriceCents: 1000},
	}
}

func TestMemoryCartStore_PutGetRemove(t *testing.T) {
	store := repository.NewMemoryCartStore()
	ctx := context.Background()

	item := storeItem("x-bacon", 2)
	if err := store.Put(ctx, "sess-1", item); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "sess-1", item.ID)
	if err != nil || got == nil {
		t.Fatalf("Get: %v %v", got, err)
	}
	if got.Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", got.Quantity)
	}

	// Put with the same id overwrites.
	item.Quantity = 5
	if err := store.Put(ctx, "sess-1", item); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, _ = store.Get(ctx, "sess-1", item.ID)
	if got.Quantity != 5 {
		t.Errorf("Expected quantity 5 after overwrite, got %d", got.Quantity)
	}

	ok, err := store.Remove(ctx, "sess-1", item.ID)
	if err != nil || !ok {
		t.Fatalf("Remove: ok=%v err=%v", ok, err)
	}
	ok, err = store.Remove(ctx, "sess-1", item.ID)
	if err != nil {
		t.Fatalf("Remove again: %v", err)
	}
	if ok {
		t.Error("Expected false on removing a removed item")
	}
}

func TestMemoryCartStore_ItemsAndClear(t *testing.T) {
	store := repository.NewMemoryCartStore()
	ctx := context.Background()

	if err := store.Put(ctx, "sess-1", storeItem("x-bacon", 1)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "sess-1", storeItem("coca-lata", 2)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	items, err := store.Items(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}

	// Unknown session reads as empty, not as an error.
	items, err = store.Items(ctx, "sess-unknown")
	if err != nil {
		t.Fatalf("Items unknown session: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty cart, got %d items", len(items))
	}

	if err := store.Clear(ctx, "sess-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	items, _ = store.Items(ctx, "sess-1")
	if len(items) != 0 {
		t.Errorf("Expected empty cart after clear, got %d items", len(items))
	}
}

func TestMemoryCartStore_ConcurrentAccess(t *testing.T) {
	store := repository.NewMemoryCartStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(ctx, "sess-1", storeItem("x-bacon", 1))
			_, _ = store.Items(ctx, "sess-1")
		}()
	}
	wg.Wait()

	items, err := store.Items(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 20 {
		t.Errorf("Expected 20 items, got %d", len(items))
	}
}

func TestCatalogRepo_Lookups(t *testing.T) {
	repo := repository.NewSeededCatalogRepo()
	ctx := context.Background()

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("Expected seeded products")
	}

	first := all[0]
	got, err := repo.GetByID(ctx, first.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v %v", got, err)
	}
	if got.Name != first.Name {
		t.Errorf("GetByID mismatch: %+v", got)
	}

	missing, err := repo.GetByID(ctx, "nao-existe")
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown product, got %+v", missing)
	}

	burgers, err := repo.ListByCategory(ctx, models.CategoryHamburguer)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(burgers) == 0 {
		t.Fatal("Expected burgers in the seeded menu")
	}
	for _, p := range burgers {
		if p.Category != models.CategoryHamburguer {
			t.Errorf("Expected only burgers, got %s in %s", p.ID, p.Category)
		}
	}

	featured, err := repo.ListFeatured(ctx)
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("Expected only featured products, got %s", p.ID)
		}
	}
}
