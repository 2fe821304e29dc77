package usecase

import (
	"sync"

	"audiomart/internal/domain"
)

// CartUC is the single process-wide cart. Every mutation swaps state under the
// mutex, so readers never observe a partially applied update. Insertion order
// is first-add order and survives quantity changes.
type CartUC struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartUC() *CartUC {
	return &CartUC{}
}

// AddToCart merges on (product id, color name): a repeat add of the same
// combination bumps the existing line instead of appending a duplicate. The
// first image of the chosen color (or the product image) is snapshotted as the
// line's display image.
func (c *CartUC) AddToCart(p domain.Product, quantity int, selectedColor *domain.ColorVariant) {
	if quantity < 1 {
		quantity = 1
	}

	item := domain.CartItem{Product: p, Quantity: quantity, SelectedColor: selectedColor}
	if selectedColor != nil && len(selectedColor.Images) > 0 {
		item.SelectedImage = selectedColor.Images[0]
	} else {
		item.SelectedImage = p.Image
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := item.Key()
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveFromCart drops every line for the product id, all color variants
// included. Removal is deliberately coarser than the (id, color) key AddToCart
// merges on.
func (c *CartUC) RemoveFromCart(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *CartUC) removeLocked(productID string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// UpdateQuantity sets the first matching line's quantity. Zero or negative
// behaves exactly like RemoveFromCart; the cart never stores a non-positive
// quantity.
func (c *CartUC) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *CartUC) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy; callers cannot reach the live list.
func (c *CartUC) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Totals recomputes from scratch on every call.
func (c *CartUC) Totals() domain.CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalsOf(c.items)
}

func totalsOf(items []domain.CartItem) domain.CartTotals {
	var t domain.CartTotals
	for _, it := range items {
		t.Items += it.Quantity
		t.Price += it.Product.Price * it.Quantity
		t.OriginalPrice += it.Product.OriginalPrice * it.Quantity
	}
	t.Discount = t.OriginalPrice - t.Price
	return t
}

func (c *CartUC) GetTotalItems() int         { return c.Totals().Items }
func (c *CartUC) GetTotalPrice() int         { return c.Totals().Price }
func (c *CartUC) GetTotalOriginalPrice() int { return c.Totals().OriginalPrice }
func (c *CartUC) GetTotalDiscount() int      { return c.Totals().Discount }
