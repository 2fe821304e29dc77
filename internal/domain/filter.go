package domain

type SortOption string

const (
	SortPopularity SortOption = "popularity"
	SortPriceLow   SortOption = "price-low"
	SortPriceHigh  SortOption = "price-high"
	SortRating     SortOption = "rating"
	SortNewest     SortOption = "newest"
)

// ParseSortOption maps unknown values to the default, never errors.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return SortOption(s)
	}
	return SortPopularity
}

// PriceRange is a single selectable bucket, inclusive on both ends.
type PriceRange struct {
	Label string `json:"label,omitempty" yaml:"label"`
	Min   int    `json:"min" yaml:"min"`
	Max   int    `json:"max" yaml:"max"`
}

// BatteryBand is half-open [Min, Max); Max == 0 means open-ended.
type BatteryBand struct {
	Label string `json:"label,omitempty" yaml:"label"`
	Min   int    `json:"min" yaml:"min"`
	Max   int    `json:"max,omitempty" yaml:"max"`
}

// Filters narrows the catalog. Zero values mean "no constraint": an empty
// brand set matches every brand, nil pointers leave the axis unfiltered.
// The boolean flags are tri-state; only true constrains.
type Filters struct {
	Brands              []string     `json:"brands"`
	PriceRange          *PriceRange  `json:"priceRange,omitempty"`
	MinRating           *float64     `json:"minRating,omitempty"`
	BatteryLife         *BatteryBand `json:"batteryLife,omitempty"`
	HasANC              *bool        `json:"hasANC,omitempty"`
	HasWirelessCharging *bool        `json:"hasWirelessCharging,omitempty"`
}

// FilterPresets is the fixed set of selectable filter buckets shown alongside
// the catalog.
type FilterPresets struct {
	Brands       []string      `json:"brands"`
	PriceRanges  []PriceRange  `json:"priceRanges"`
	RatingFloors []float64     `json:"ratingFloors"`
	BatteryBands []BatteryBand `json:"batteryBands"`
}
