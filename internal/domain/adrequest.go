package domain

import "time"

type AdRequestStatus string

const (
	StatusPending         AdRequestStatus = "Pending"
	StatusApproved        AdRequestStatus = "Approved"
	StatusRejected        AdRequestStatus = "Rejected"
	StatusPaymentPending  AdRequestStatus = "PaymentPending"
	StatusPaymentVerified AdRequestStatus = "PaymentVerified"
	StatusLive            AdRequestStatus = "Live"
	StatusExpired         AdRequestStatus = "Expired"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "Unpaid"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

// AdContent is the display payload of a carousel ad. The booking core
// copies it verbatim at materialization and never interprets it.
type AdContent struct {
	ShopName    string
	Tagline     string
	Description string
	ImageURL    string
	Badge       string
	BadgeColor  string
	CTAText     string
	CTALink     string
}

// AdRequest is one seller submission for a promotional slot on the
// homepage carousel.
type AdRequest struct {
	ID          string
	SellerID    string
	SellerName  string
	SellerEmail string
	SellerPhone string

	Content AdContent

	// Half-open day range [StartDate, EndDate), midnight-normalized.
	StartDate    time.Time
	EndDate      time.Time
	DurationDays int

	RequestedPrice float64
	AdPrice        float64

	PaymentStatus        PaymentStatus
	PaymentMethod        string
	PaymentReference     string
	PaymentScreenshotURL string
	PaymentNote          string
	PaidAt               *time.Time

	Status     AdRequestStatus
	AdminNote  string
	ApprovedAt *time.Time
	RejectedAt *time.Time

	ShopAdID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsCapacity reports whether the request itself counts toward the
// per-day cap. Once a request goes Live its ShopAd is the counting
// source of truth, so Live is deliberately excluded here.
func (r *AdRequest) HoldsCapacity() bool {
	switch r.Status {
	case StatusApproved, StatusPaymentPending, StatusPaymentVerified:
		return true
	}
	return false
}

// EffectiveStatus derives the lazily-computed status: a Live request
// whose range has passed reads as Expired without a background sweep.
func (r *AdRequest) EffectiveStatus(now time.Time) AdRequestStatus {
	if r.Status == StatusLive && !r.EndDate.IsZero() && !now.Before(r.EndDate) {
		return StatusExpired
	}
	return r.Status
}

func (r *AdRequest) HasPaymentProof() bool {
	return r.PaymentReference != "" || r.PaymentScreenshotURL != ""
}
