package domain

import (
	"context"
	"time"
)

// Notification is the fire-and-forget message handed to the sink.
// Delivery failures are logged by implementations, never returned to
// the operation that triggered them.
type Notification struct {
	RecipientType string
	RecipientID   string
	Title         string
	Message       string
	Link          string
	Priority      string
}

type NotifierPort interface {
	Notify(ctx context.Context, n Notification) error
}

// GatewayOrder is the gateway-side order a checkout is opened against.
type GatewayOrder struct {
	OrderID     string
	KeyID       string
	AmountMinor int64
	Currency    string
	Receipt     string
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
	// Refund returns the gateway refund id.
	Refund(ctx context.Context, gatewayPaymentID string, amountMinor int64, reason string) (string, error)
}

// Seller is the identity snapshot resolved for an authenticated caller.
type Seller struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type SellerDirectory interface {
	GetSeller(ctx context.Context, id string) (*Seller, error)
}

type UnlockFunc func()

// DayLocker serializes slot-consuming writes per calendar day. The lock
// set must be held from before the availability read until after the
// write commits.
type DayLocker interface {
	LockDays(ctx context.Context, days []time.Time) (UnlockFunc, error)
}
