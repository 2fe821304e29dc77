// Package memory backs the catalog with a static in-memory product list. The
// demo has no database: the whole "backend" is this slice plus one JSON blob
// for the saved address.
package memory

import (
	"context"

	"audiomart/internal/domain"
)

type ProductRepo struct {
	products []domain.Product
	presets  domain.FilterPresets
}

// NewProductRepo serves the built-in seed catalog.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: seedProducts, presets: seedPresets}
}

// NewProductRepoWith serves a caller-provided catalog; used by tests.
func NewProductRepoWith(products []domain.Product) *ProductRepo {
	return &ProductRepo{products: products, presets: seedPresets}
}

// List hands out a copy so callers can filter and sort freely.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ProductRepo) Presets(ctx context.Context) (*domain.FilterPresets, error) {
	p := r.presets
	return &p, nil
}
