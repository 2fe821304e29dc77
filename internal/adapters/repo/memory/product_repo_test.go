package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiomart/internal/domain"
)

func TestListReturnsSeedCopy(t *testing.T) {
	r := NewProductRepo()

	first, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 16)

	first[0].Name = "mutated"
	second, _ := r.List(context.Background())
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestSeedCatalogShape(t *testing.T) {
	r := NewProductRepo()
	products, err := r.List(context.Background())
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Brand)
		assert.Greater(t, p.Price, 0)
		assert.GreaterOrEqual(t, p.OriginalPrice, p.Price)
		assert.NotEmpty(t, p.Highlights)
		assert.Greater(t, p.BatteryLife, 0)
	}
}

func TestFindByID(t *testing.T) {
	r := NewProductRepo()

	p, err := r.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)
	assert.NotEmpty(t, p.ColorVariants, "product 1 declares explicit variants")

	_, err = r.FindByID(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPresets(t *testing.T) {
	r := NewProductRepo()

	presets, err := r.Presets(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, presets.Brands)
	assert.NotEmpty(t, presets.PriceRanges)
	assert.Equal(t, []float64{4, 3, 2, 1}, presets.RatingFloors)
	assert.Len(t, presets.BatteryBands, 4)
}
