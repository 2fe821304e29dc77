package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"audiomart/internal/domain"
)

type CatalogUC struct {
	Products domain.ProductRepo
}

// QuerySpec is one catalog page request: free text, filter axes, sort key.
type QuerySpec struct {
	Search  string
	Filters domain.Filters
	Sort    domain.SortOption
}

func (uc *CatalogUC) List(ctx context.Context, spec QuerySpec) ([]domain.Product, error) {
	all, err := uc.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	return Query(all, spec.Filters, spec.Sort, spec.Search), nil
}

func (uc *CatalogUC) Get(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	return uc.Products.FindByID(ctx, id)
}

func (uc *CatalogUC) Presets(ctx context.Context) (*domain.FilterPresets, error) {
	return uc.Products.Presets(ctx)
}

// Query runs the fixed filter pipeline and then sorts. Pure: the input slice
// is never mutated, and identical arguments always yield identical output.
// Pipeline order: search, brands, price range, rating floor, battery band,
// ANC, wireless charging, sort.
func Query(products []domain.Product, f domain.Filters, sortKey domain.SortOption, search string) []domain.Product {
	result := make([]domain.Product, len(products))
	copy(result, products)

	if q := strings.TrimSpace(search); q != "" {
		result = filter(result, func(p *domain.Product) bool { return matchesSearch(p, q) })
	}

	if len(f.Brands) > 0 {
		set := map[string]struct{}{}
		for _, b := range f.Brands {
			set[b] = struct{}{}
		}
		result = filter(result, func(p *domain.Product) bool {
			_, ok := set[p.Brand]
			return ok
		})
	}

	if pr := f.PriceRange; pr != nil {
		result = filter(result, func(p *domain.Product) bool {
			return p.Price >= pr.Min && p.Price <= pr.Max
		})
	}

	if f.MinRating != nil {
		min := *f.MinRating
		result = filter(result, func(p *domain.Product) bool { return p.Rating >= min })
	}

	if bb := f.BatteryLife; bb != nil {
		result = filter(result, func(p *domain.Product) bool {
			if bb.Max > 0 {
				return p.BatteryLife >= bb.Min && p.BatteryLife < bb.Max
			}
			return p.BatteryLife >= bb.Min
		})
	}

	if f.HasANC != nil && *f.HasANC {
		result = filter(result, func(p *domain.Product) bool { return p.HasANC })
	}

	if f.HasWirelessCharging != nil && *f.HasWirelessCharging {
		result = filter(result, func(p *domain.Product) bool { return p.HasWirelessCharging })
	}

	sortProducts(result, sortKey)
	return result
}

func filter(in []domain.Product, keep func(*domain.Product) bool) []domain.Product {
	out := in[:0]
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

// matchesSearch is a case-insensitive substring match over name, brand, and
// every highlight. No tokenizing, no ranking: this is not a search engine.
func matchesSearch(p *domain.Product, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, h := range p.Highlights {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

// sortProducts sorts in place, stably: ties keep their pre-sort order.
func sortProducts(ps []domain.Product, key domain.SortOption) {
	switch key {
	case domain.SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case domain.SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case domain.SortRating:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case domain.SortNewest:
		sort.SliceStable(ps, func(i, j int) bool { return numericID(ps[i].ID) > numericID(ps[j].ID) })
	default: // popularity
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Reviews > ps[j].Reviews })
	}
}

func numericID(id string) int {
	n, _ := strconv.Atoi(id)
	return n
}
