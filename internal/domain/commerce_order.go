package domain

import "time"

// CommerceOrder is the slice of a storefront order this core settles
// payments against. Everything else about orders lives elsewhere.
type CommerceOrder struct {
	ID            string
	CustomerID    string
	Total         float64
	Status        string
	PaymentStatus string
	PaymentID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
