package domain

import (
	"math"
	"sort"
	"strconv"
)

// ColorVariant is a display-only SKU facet: a named color with its own image
// set. The name also participates in cart-entry identity (see CartItem.Key).
type ColorVariant struct {
	Name   string   `json:"name"`
	Color  string   `json:"color"`
	Images []string `json:"images"`
}

type Product struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Brand               string         `json:"brand"`
	Seller              string         `json:"seller,omitempty"`
	Image               string         `json:"image"`
	Images              []string       `json:"images,omitempty"`
	Rating              float64        `json:"rating"`
	Reviews             int            `json:"reviews"`
	Price               int            `json:"price"`
	OriginalPrice       int            `json:"originalPrice"`
	Discount            int            `json:"discount,omitempty"`
	Highlights          []string       `json:"highlights"`
	BatteryLife         int            `json:"batteryLife"`
	HasANC              bool           `json:"hasANC"`
	HasWirelessCharging bool           `json:"hasWirelessCharging"`
	ColorVariants       []ColorVariant `json:"colorVariants,omitempty"`
}

// SellerName falls back to the brand when no seller is set.
func (p *Product) SellerName() string {
	if p.Seller != "" {
		return p.Seller
	}
	return p.Brand
}

// DiscountPercentage returns the explicit discount when present, otherwise
// derives it from the price pair. Never negative: a product priced at or above
// its original price has a 0% discount.
func (p *Product) DiscountPercentage() int {
	if p.Discount > 0 {
		return p.Discount
	}
	if p.OriginalPrice <= 0 || p.Price >= p.OriginalPrice {
		return 0
	}
	return int(math.Round(float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice) * 100))
}

// DefaultColorVariants is the fixed palette applied to products that do not
// declare their own variants.
var DefaultColorVariants = []ColorVariant{
	{Name: "Navy Blue", Color: "#1E3A5F", Images: []string{
		"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=300&h=300&fit=crop",
	}},
	{Name: "Jet Black", Color: "#1A1A1A", Images: []string{
		"https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?w=300&h=300&fit=crop",
	}},
	{Name: "Olive Green", Color: "#4A5D23", Images: []string{
		"https://images.unsplash.com/photo-1631867675167-90a456a90863?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1631867675167-90a456a90863?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1631867675167-90a456a90863?w=300&h=300&fit=crop",
	}},
	{Name: "Wine Red", Color: "#8B2346", Images: []string{
		"https://images.unsplash.com/photo-1598331668826-20cecc596b86?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1598331668826-20cecc596b86?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1598331668826-20cecc596b86?w=300&h=300&fit=crop",
	}},
	{Name: "Silver", Color: "#C0C0C0", Images: []string{
		"https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=300&h=300&fit=crop",
	}},
}

// productSeed turns the numeric id into the seed all derived display values
// hang off. Non-numeric ids collapse to 1 so derivation stays total.
func productSeed(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// ProductColorVariants returns the product's declared variants, or a
// deterministic pick of 2-3 entries from the default palette. Pure function of
// the id: count = seed%2+2, order = stable sort of the palette by
// (seed*name[0])%100.
func ProductColorVariants(p *Product) []ColorVariant {
	if len(p.ColorVariants) > 0 {
		return p.ColorVariants
	}

	seed := productSeed(p.ID)
	count := seed%2 + 2

	shuffled := make([]ColorVariant, len(DefaultColorVariants))
	copy(shuffled, DefaultColorVariants)
	sort.SliceStable(shuffled, func(i, j int) bool {
		hi := (seed * int(shuffled[i].Name[0])) % 100
		hj := (seed * int(shuffled[j].Name[0])) % 100
		return hi < hj
	})

	return shuffled[:count]
}

var displayRatings = []float64{4.0, 4.1, 4.2, 4.3, 4.4, 4.5, 4.6, 4.7, 4.8, 4.9, 5.0}

// DisplayRating picks a cosmetic rating from a fixed ladder, seeded by the id.
func DisplayRating(p *Product) float64 {
	return displayRatings[productSeed(p.ID)%len(displayRatings)]
}

// GalleryImages resolves the detail-page gallery: explicit gallery first, then
// the selected variant's images, then the single catalog image repeated.
func GalleryImages(p *Product, selected *ColorVariant) []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if selected != nil && len(selected.Images) > 0 {
		return selected.Images
	}
	return []string{p.Image, p.Image, p.Image}
}
