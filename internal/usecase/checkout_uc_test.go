package usecase

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiomart/internal/domain"
)

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock hands out timers that only fire when the test says so.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire advances the clock and runs every pending timer that was not stopped.
func (c *fakeClock) fire(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	pending := c.timers
	c.timers = nil
	c.mu.Unlock()

	for _, t := range pending {
		if !t.stopped {
			t.fired = true
			t.f()
		}
	}
}

type memAddressStore struct {
	addr *domain.SavedAddress
}

func (s *memAddressStore) Load() (*domain.SavedAddress, error) { return s.addr, nil }
func (s *memAddressStore) Save(a *domain.SavedAddress) error   { s.addr = a; return nil }

type fakeGateway struct{}

func (fakeGateway) Methods() []domain.PaymentMethod {
	return []domain.PaymentMethod{{ID: "gpay", Name: "Google Pay"}}
}

func (fakeGateway) PayLink(methodID string, amount int, note string) (string, error) {
	if methodID != "gpay" {
		return "", errors.New("unknown payment method")
	}
	return "upi://pay?test=1", nil
}

func checkoutFixture(t *testing.T) (*CheckoutUC, *CartUC, *fakeClock, *memAddressStore) {
	t.Helper()
	cart := NewCartUC()
	clock := newFakeClock()
	store := &memAddressStore{}
	uc := NewCheckoutUC(cart, store, fakeGateway{}, clock, CheckoutConfig{
		ConfirmAfter:  30 * time.Second,
		DisplayWindow: 120 * time.Second,
	})
	return uc, cart, clock, store
}

func goodAddress() *domain.AddressForm {
	return &domain.AddressForm{
		Name: "Asha Rao", Phone: "9876543210", Pincode: "560001",
		City: "Bengaluru", State: "Karnataka", HouseNo: "12B", Area: "MG Road",
	}
}

func TestBeginRequiresItems(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t)
	_, err := uc.Begin()
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestBeginSnapshotsCart(t *testing.T) {
	uc, cart, _, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 2, nil)

	c, err := uc.Begin()
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingAddress, c.State())

	// mutating the cart afterwards must not touch the session snapshot
	cart.AddToCart(bandP, 1, nil)
	st := c.Status()
	require.Len(t, st.Items, 1)
	assert.Equal(t, 200, st.Totals.Price)
}

func TestBeginSkipsAddressWhenSaved(t *testing.T) {
	uc, cart, _, store := checkoutFixture(t)
	store.addr = goodAddress().ToSavedAddress()
	cart.AddToCart(budsP, 1, nil)

	c, err := uc.Begin()
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingPayment, c.State())
	assert.NotNil(t, c.Status().Address)
}

func TestPayBeforeAddressRejected(t *testing.T) {
	uc, cart, _, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, err := uc.Begin()
	require.NoError(t, err)

	_, err = c.Pay("gpay")
	assert.ErrorIs(t, err, domain.ErrBadTransition)
}

func TestSubmitAddressValidation(t *testing.T) {
	uc, cart, _, store := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, err := uc.Begin()
	require.NoError(t, err)

	bad := goodAddress()
	bad.Phone = "12345"
	fieldErrs, err := c.SubmitAddress(bad)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, fieldErrs, "phone")
	assert.Equal(t, StateAwaitingAddress, c.State())
	assert.Nil(t, store.addr, "a rejected form must not be persisted")
}

func TestSubmitAddressAdvancesAndPersists(t *testing.T) {
	uc, cart, _, store := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, err := uc.Begin()
	require.NoError(t, err)

	fieldErrs, err := c.SubmitAddress(goodAddress())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, StateAwaitingPayment, c.State())
	require.NotNil(t, store.addr)
	assert.Equal(t, "12B, MG Road", store.addr.Address)
}

func TestResubmitAddressWhileAwaitingPayment(t *testing.T) {
	uc, cart, _, store := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()
	_, err := c.SubmitAddress(goodAddress())
	require.NoError(t, err)

	replacement := goodAddress()
	replacement.City = "Mysuru"
	_, err = c.SubmitAddress(replacement)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingPayment, c.State())
	assert.Equal(t, "Mysuru", store.addr.City)
}

func TestPayFullFlow(t *testing.T) {
	uc, cart, clock, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 2, nil)

	c, _ := uc.Begin()
	_, err := c.SubmitAddress(goodAddress())
	require.NoError(t, err)

	link, err := c.Pay("gpay")
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?test=1", link)
	assert.Equal(t, StateProcessing, c.State())
	assert.Empty(t, cart.Items(), "paying clears the live cart")

	st := c.Status()
	assert.Equal(t, 120, st.DisplaySeconds)
	assert.Equal(t, 120, st.SecondsRemaining)
	assert.True(t, strings.HasPrefix(st.OrderID, "OD"))

	_, _, err = c.Order()
	assert.ErrorIs(t, err, domain.ErrBadTransition, "order is gated until confirmation")

	clock.fire(30 * time.Second)
	assert.Equal(t, StateSucceeded, c.State())

	order, tracking, err := c.Order()
	require.NoError(t, err)
	assert.Equal(t, 200, order.Amount)
	assert.Equal(t, "gpay", order.PaymentMethod)
	require.Len(t, tracking, 4)
	assert.Equal(t, order.Date.AddDate(0, 0, 2), tracking[1].Date)
}

func TestDisplayWindowOnlyWhileProcessing(t *testing.T) {
	uc, cart, clock, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()
	st := c.Status()
	assert.Zero(t, st.DisplaySeconds)
	assert.Zero(t, st.SecondsRemaining)

	_, _ = c.SubmitAddress(goodAddress())
	assert.Zero(t, c.Status().DisplaySeconds)

	_, err := c.Pay("gpay")
	require.NoError(t, err)
	st = c.Status()
	assert.Equal(t, 120, st.DisplaySeconds)
	assert.Equal(t, 120, st.SecondsRemaining)

	clock.fire(30 * time.Second)
	st = c.Status()
	assert.Equal(t, StateSucceeded, st.State)
	assert.Zero(t, st.DisplaySeconds, "no countdown once the order is confirmed")
	assert.Zero(t, st.SecondsRemaining)
}

func TestStatusCountsDown(t *testing.T) {
	uc, cart, clock, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()
	_, _ = c.SubmitAddress(goodAddress())
	_, err := c.Pay("gpay")
	require.NoError(t, err)

	clock.mu.Lock()
	clock.now = clock.now.Add(20 * time.Second)
	clock.mu.Unlock()

	assert.Equal(t, 100, c.Status().SecondsRemaining)
}

func TestPayUnknownMethod(t *testing.T) {
	uc, cart, _, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()
	_, _ = c.SubmitAddress(goodAddress())

	_, err := c.Pay("cod")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBadTransition)
	assert.Equal(t, StateAwaitingPayment, c.State(), "a failed link build does not advance the sequence")
}

func TestDoublePayRejected(t *testing.T) {
	uc, cart, _, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()
	_, _ = c.SubmitAddress(goodAddress())
	_, err := c.Pay("gpay")
	require.NoError(t, err)

	_, err = c.Pay("gpay")
	assert.ErrorIs(t, err, domain.ErrBadTransition)
}

func TestCloseStopsPendingConfirmation(t *testing.T) {
	uc, cart, clock, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()
	_, _ = c.SubmitAddress(goodAddress())
	_, err := c.Pay("gpay")
	require.NoError(t, err)

	c.Close()
	clock.fire(30 * time.Second)
	assert.Equal(t, StateProcessing, c.State(), "a closed session never auto-confirms")
}

func TestGetSession(t *testing.T) {
	uc, cart, _, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()

	got, err := uc.Get(c.ID)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = uc.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShutdownStopsAllTimers(t *testing.T) {
	uc, cart, clock, _ := checkoutFixture(t)
	cart.AddToCart(budsP, 1, nil)

	c, _ := uc.Begin()
	_, _ = c.SubmitAddress(goodAddress())
	_, err := c.Pay("gpay")
	require.NoError(t, err)

	uc.Shutdown()
	clock.fire(time.Minute)
	assert.Equal(t, StateProcessing, c.State())
}
