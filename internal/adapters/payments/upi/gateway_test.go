package upi

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodsListsEveryOption(t *testing.T) {
	g := NewGateway("", "")
	ms := g.Methods()
	require.Len(t, ms, 6)

	var cod *struct {
		disabled bool
		note     string
	}
	for _, m := range ms {
		if m.ID == "cod" {
			cod = &struct {
				disabled bool
				note     string
			}{m.Disabled, m.DisabledNote}
		}
	}
	require.NotNil(t, cod, "cash on delivery row must still be listed")
	assert.True(t, cod.disabled)
	assert.Equal(t, "Not available for your pincode", cod.note)
}

func TestPayLinkSchemes(t *testing.T) {
	g := NewGateway("shop@upi", "AudioMart")

	tests := []struct {
		method string
		prefix string
	}{
		{"phonepe", "phonepe://pay?"},
		{"paytm", "paytmmp://pay?"},
		{"gpay", "tez://upi/pay?"},
		{"bhim", "upi://pay?"},
		{"upi", "upi://pay?"},
	}
	for _, tt := range tests {
		link, err := g.PayLink(tt.method, 1499, "Order Payment - 2 items")
		require.NoError(t, err, tt.method)
		assert.True(t, strings.HasPrefix(link, tt.prefix), "%s: %s", tt.method, link)
	}
}

func TestPayLinkParams(t *testing.T) {
	g := NewGateway("shop@upi", "AudioMart")

	link, err := g.PayLink("gpay", 1499, "Order Payment - 2 items")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "shop@upi", q.Get("pa"))
	assert.Equal(t, "AudioMart", q.Get("pn"))
	assert.Equal(t, "1499.00", q.Get("am"))
	assert.Equal(t, "INR", q.Get("cu"))
	assert.Equal(t, "Order Payment - 2 items", q.Get("tn"))
}

func TestPayLinkRejectsDisabledAndUnknown(t *testing.T) {
	g := NewGateway("", "")

	_, err := g.PayLink("cod", 100, "note")
	assert.Error(t, err)

	_, err = g.PayLink("bitcoin", 100, "note")
	assert.Error(t, err)
}

func TestNewGatewayDefaults(t *testing.T) {
	g := NewGateway("  ", "")
	link, err := g.PayLink("upi", 50, "n")
	require.NoError(t, err)

	u, _ := url.Parse(link)
	assert.Equal(t, "audiomart@upi", u.Query().Get("pa"))
	assert.Equal(t, "AudioMart", u.Query().Get("pn"))
}
