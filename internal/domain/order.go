package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// Order is synthesized client-side at pay time. It is a demo artifact: it
// lives only for the session and is never written to durable storage.
type Order struct {
	ID            string     `json:"orderId"`
	Date          time.Time  `json:"orderDate"`
	Items         []CartItem `json:"items"`
	Amount        int        `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID builds "OD" + unix millis + a 6-char base36 suffix.
func NewOrderID(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return fmt.Sprintf("OD%d%s", now.UnixMilli(), suffix)
}

type TrackingStep struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"isCompleted"`
	Current   bool      `json:"isCurrent"`
}

// Tracking fabricates the fulfillment timeline from fixed offsets off the
// order date. Nothing real backs it; the dates are presentation only.
func (o *Order) Tracking() []TrackingStep {
	return []TrackingStep{
		{ID: "confirmed", Title: "Order Confirmed", Date: o.Date, Completed: true, Current: true},
		{ID: "shipped", Title: "Shipped", Date: o.Date.AddDate(0, 0, 2)},
		{ID: "out-for-delivery", Title: "Out for Delivery", Date: o.Date.AddDate(0, 0, 4)},
		{ID: "delivered", Title: "Delivered", Date: o.Date.AddDate(0, 0, 4)},
	}
}
