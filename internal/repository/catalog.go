package repository

import (
	"context"

	"github.com/danieltechTI/ReiBurguer/internal/models"
)

// ProductRepo is the catalog lookup surface. The catalog is immutable after
// load, so the default implementation holds the seeded slice in memory and
// never errors; the interface keeps the persistence backend swappable.
type ProductRepo interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
}

type catalogRepo struct {
	products []models.Product
	byID     map[string]models.Product
}

func NewCatalogRepo(products []models.Product) ProductRepo {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &catalogRepo{products: products, byID: byID}
}

// NewSeededCatalogRepo loads the standard menu.
func NewSeededCatalogRepo() ProductRepo {
	return NewCatalogRepo(seedProducts)
}

func (r *catalogRepo) List(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *catalogRepo) ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *catalogRepo) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}
