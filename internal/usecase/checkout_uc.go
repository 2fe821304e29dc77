package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"audiomart/internal/domain"
)

type CheckoutState string

const (
	StateAwaitingAddress CheckoutState = "awaiting_address"
	StateAwaitingPayment CheckoutState = "awaiting_payment"
	StateProcessing      CheckoutState = "processing"
	StateSucceeded       CheckoutState = "succeeded"
)

// CheckoutConfig times the simulated payment flow. The display window is what
// the waiting screen counts down from; confirmation fires earlier, at
// ConfirmAfter, and unconditionally treats the order as paid. There is no
// failure branch anywhere in the sequence.
type CheckoutConfig struct {
	ConfirmAfter  time.Duration
	DisplayWindow time.Duration
}

func (c *CheckoutConfig) applyDefaults() {
	if c.ConfirmAfter <= 0 {
		c.ConfirmAfter = 30 * time.Second
	}
	if c.DisplayWindow <= 0 {
		c.DisplayWindow = 120 * time.Second
	}
}

// CheckoutUC creates and tracks checkout sessions. Each session snapshots the
// cart when it begins; the snapshot, not transient navigation state, is the
// single owner of the in-flight order context.
type CheckoutUC struct {
	Cart      *CartUC
	Addresses domain.AddressStore
	Gateway   domain.PaymentGateway
	Clock     Clock
	Config    CheckoutConfig

	mu       sync.Mutex
	sessions map[string]*Checkout
}

func NewCheckoutUC(cart *CartUC, addresses domain.AddressStore, gateway domain.PaymentGateway, clock Clock, cfg CheckoutConfig) *CheckoutUC {
	cfg.applyDefaults()
	if clock == nil {
		clock = RealClock()
	}
	return &CheckoutUC{
		Cart:      cart,
		Addresses: addresses,
		Gateway:   gateway,
		Clock:     clock,
		Config:    cfg,
		sessions:  map[string]*Checkout{},
	}
}

// Begin snapshots the cart into a new session. An already-saved address skips
// the address stage, matching the order-summary gate.
func (uc *CheckoutUC) Begin() (*Checkout, error) {
	items := uc.Cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	addr, err := uc.Addresses.Load()
	if err != nil {
		return nil, fmt.Errorf("load saved address: %w", err)
	}

	c := &Checkout{
		ID:      uuid.NewString(),
		uc:      uc,
		state:   StateAwaitingAddress,
		items:   items,
		totals:  totalsOf(items),
		address: addr,
	}
	if addr != nil {
		c.state = StateAwaitingPayment
	}

	uc.mu.Lock()
	uc.sessions[c.ID] = c
	uc.mu.Unlock()
	return c, nil
}

func (uc *CheckoutUC) Get(id string) (*Checkout, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Shutdown disposes every pending confirmation timer.
func (uc *CheckoutUC) Shutdown() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, c := range uc.sessions {
		c.Close()
	}
}

// Checkout is one strictly linear run through the sequence:
// AwaitingAddress -> AwaitingPayment -> Processing -> Succeeded.
type Checkout struct {
	ID string
	uc *CheckoutUC

	mu           sync.Mutex
	state        CheckoutState
	items        []domain.CartItem
	totals       domain.CartTotals
	address      *domain.SavedAddress
	payLink      string
	order        *domain.Order
	processingAt time.Time
	timer        Timer
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CheckoutStatus is the read model served to the checkout views.
type CheckoutStatus struct {
	ID               string               `json:"id"`
	State            CheckoutState        `json:"state"`
	Items            []domain.CartItem    `json:"items"`
	Totals           domain.CartTotals    `json:"totals"`
	Address          *domain.SavedAddress `json:"address,omitempty"`
	PayLink          string               `json:"payLink,omitempty"`
	OrderID          string               `json:"orderId,omitempty"`
	DisplaySeconds   int                  `json:"displaySeconds"`
	SecondsRemaining int                  `json:"secondsRemaining"`
}

func (c *Checkout) Status() CheckoutStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := CheckoutStatus{
		ID:      c.ID,
		State:   c.state,
		Items:   c.items,
		Totals:  c.totals,
		Address: c.address,
		PayLink: c.payLink,
	}
	if c.order != nil {
		st.OrderID = c.order.ID
	}
	// the countdown only exists while the confirmation timer is live
	if c.state == StateProcessing {
		st.DisplaySeconds = int(c.uc.Config.DisplayWindow / time.Second)
		elapsed := c.uc.Clock.Now().Sub(c.processingAt)
		remaining := c.uc.Config.DisplayWindow - elapsed
		if remaining < 0 {
			remaining = 0
		}
		st.SecondsRemaining = int(remaining / time.Second)
	}
	return st
}

// SubmitAddress validates every field and reports all failures together. On
// success the single saved address is overwritten and the session advances to
// payment. Re-submitting while already at payment just replaces the address.
func (c *Checkout) SubmitAddress(form *domain.AddressForm) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAwaitingAddress && c.state != StateAwaitingPayment {
		return nil, domain.ErrBadTransition
	}

	if errs := form.Validate(); len(errs) > 0 {
		return errs, domain.ErrValidation
	}

	addr := form.ToSavedAddress()
	if err := c.uc.Addresses.Save(addr); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}
	c.address = addr
	c.state = StateAwaitingPayment
	return nil, nil
}

// Pay builds the UPI deep link for the chosen method, synthesizes the order,
// clears the live cart, and starts the fixed-delay auto-confirmation. The link
// is fire-and-forget: nothing ever reports whether the payment went through,
// the timer alone decides when the order counts as paid.
func (c *Checkout) Pay(methodID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAwaitingPayment {
		return "", domain.ErrBadTransition
	}

	note := fmt.Sprintf("Order Payment - %d items", c.totals.Items)
	link, err := c.uc.Gateway.PayLink(methodID, c.totals.Price, note)
	if err != nil {
		return "", err
	}

	now := c.uc.Clock.Now()
	c.order = &domain.Order{
		ID:            domain.NewOrderID(now),
		Date:          now,
		Items:         c.items,
		Amount:        c.totals.Price,
		PaymentMethod: methodID,
	}
	c.payLink = link
	c.state = StateProcessing
	c.processingAt = now
	c.timer = c.uc.Clock.AfterFunc(c.uc.Config.ConfirmAfter, c.confirm)

	c.uc.Cart.ClearCart()

	log.Info().Str("order", c.order.ID).Str("method", methodID).Int("amount", c.order.Amount).
		Msg("payment initiated, awaiting simulated confirmation")
	return link, nil
}

func (c *Checkout) confirm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateProcessing {
		return
	}
	c.state = StateSucceeded
	log.Info().Str("order", c.order.ID).Msg("order auto-confirmed")
}

// Order is available once the session has succeeded, together with the
// fabricated tracking timeline.
func (c *Checkout) Order() (*domain.Order, []domain.TrackingStep, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSucceeded || c.order == nil {
		return nil, nil, domain.ErrBadTransition
	}
	return c.order, c.order.Tracking(), nil
}

// Close stops a pending confirmation timer so no callback fires against a
// torn-down session. It is cleanup, not a cancel transition: a session already
// in Processing that is not closed will still succeed.
func (c *Checkout) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
