package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrBadTransition = errors.New("invalid checkout transition")
	ErrValidation    = errors.New("validation failed")
)

type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Presets(ctx context.Context) (*FilterPresets, error)
}

// AddressStore persists the single SavedAddress blob. Load returns (nil, nil)
// when nothing has been saved yet.
type AddressStore interface {
	Load() (*SavedAddress, error)
	Save(a *SavedAddress) error
}

// PaymentMethod is one of the fixed UPI-app choices on the payment screen.
type PaymentMethod struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Disabled     bool   `json:"disabled,omitempty"`
	DisabledNote string `json:"disabledNote,omitempty"`
}

// PaymentGateway builds outbound deep links. Fire-and-forget: no confirmation
// ever comes back through it.
type PaymentGateway interface {
	Methods() []PaymentMethod
	PayLink(methodID string, amount int, note string) (string, error)
}
