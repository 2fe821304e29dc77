package domain

// CartItem snapshots the product plus the color variant chosen at add time.
type CartItem struct {
	Product       Product       `json:"product"`
	Quantity      int           `json:"quantity"`
	SelectedColor *ColorVariant `json:"selectedColor,omitempty"`
	SelectedImage string        `json:"selectedImage,omitempty"`
}

// Key is the cart-entry identity: same product id plus same color name merge
// into one line. Items added without a variant share the "default" slot.
func (it *CartItem) Key() string {
	color := "default"
	if it.SelectedColor != nil && it.SelectedColor.Name != "" {
		color = it.SelectedColor.Name
	}
	return it.Product.ID + "|" + color
}

// CartTotals are derived on every read, never cached.
type CartTotals struct {
	Items         int `json:"totalItems"`
	Price         int `json:"totalPrice"`
	OriginalPrice int `json:"totalOriginalPrice"`
	Discount      int `json:"totalDiscount"`
}
