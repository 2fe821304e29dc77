// Package upi builds outbound UPI deep links. The flow is best-effort and
// one-way: the client is handed a link to open in a UPI app, and no payment
// confirmation ever comes back. Nothing here talks to a gateway.
package upi

import (
	"fmt"
	"net/url"
	"strings"

	"audiomart/internal/domain"
)

type Gateway struct {
	payee    string
	merchant string
}

func NewGateway(payee, merchant string) *Gateway {
	if strings.TrimSpace(payee) == "" {
		payee = "audiomart@upi"
	}
	if strings.TrimSpace(merchant) == "" {
		merchant = "AudioMart"
	}
	return &Gateway{payee: payee, merchant: merchant}
}

type method struct {
	domain.PaymentMethod
	linkPrefix string
	genericUPI bool
}

var methods = []method{
	{PaymentMethod: domain.PaymentMethod{ID: "phonepe", Name: "PhonePe", Description: "Pay using PhonePe UPI"}, linkPrefix: "phonepe://pay"},
	{PaymentMethod: domain.PaymentMethod{ID: "paytm", Name: "Paytm", Description: "Pay using Paytm UPI"}, linkPrefix: "paytmmp://pay"},
	{PaymentMethod: domain.PaymentMethod{ID: "gpay", Name: "Google Pay", Description: "Pay using Google Pay"}, linkPrefix: "tez://upi/pay"},
	{PaymentMethod: domain.PaymentMethod{ID: "bhim", Name: "BHIM UPI", Description: "Pay using BHIM app"}, linkPrefix: "upi://pay", genericUPI: true},
	{PaymentMethod: domain.PaymentMethod{ID: "upi", Name: "Pay With UPI", Description: "Open any UPI app on your phone"}, linkPrefix: "upi://pay", genericUPI: true},
	{PaymentMethod: domain.PaymentMethod{
		ID: "cod", Name: "Cash on Delivery", Description: "Pay when you receive",
		Disabled: true, DisabledNote: "Not available for your pincode",
	}},
}

// Methods lists every method shown on the payment screen, the permanently
// disabled Cash-on-Delivery row included.
func (g *Gateway) Methods() []domain.PaymentMethod {
	out := make([]domain.PaymentMethod, len(methods))
	for i, m := range methods {
		out[i] = m.PaymentMethod
	}
	return out
}

// PayLink renders <scheme>?pa=..&pn=..&am=..&cu=INR&tn=.. for the chosen app.
// Generic/BHIM methods use the plain upi:// scheme so any installed app can
// claim the intent.
func (g *Gateway) PayLink(methodID string, amount int, note string) (string, error) {
	var m *method
	for i := range methods {
		if methods[i].ID == methodID {
			m = &methods[i]
			break
		}
	}
	if m == nil {
		return "", fmt.Errorf("unknown payment method %q", methodID)
	}
	if m.Disabled {
		return "", fmt.Errorf("payment method %q is not available", methodID)
	}

	params := url.Values{}
	params.Set("pa", g.payee)
	params.Set("pn", g.merchant)
	params.Set("am", fmt.Sprintf("%d.00", amount))
	params.Set("cu", "INR")
	params.Set("tn", note)

	prefix := m.linkPrefix
	if m.genericUPI {
		prefix = "upi://pay"
	}
	return prefix + "?" + params.Encode(), nil
}
