package domain

import "time"

// ShopAd is a live, independently-owned carousel entry materialized from
// an approved and paid AdRequest. Later edits here never write back to
// the originating request.
type ShopAd struct {
	ID           string
	DisplayOrder int
	IsActive     bool

	Content AdContent

	ContactName  string
	ContactPhone string
	ContactEmail string
	RequestedBy  string

	ApprovedAt *time.Time
	StartDate  time.Time
	EndDate    time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
