package adrequestdto

import "time"

type SubmitAdRequestInput struct {
	SellerID string

	ShopName    string
	Tagline     string
	Description string
	ImageURL    string
	Badge       string
	BadgeColor  string
	CTAText     string
	CTALink     string

	StartDate      time.Time
	DurationDays   int
	RequestedPrice float64

	PaymentMethod        string
	PaymentReference     string
	PaymentScreenshotURL string
	PaymentNote          string
}

type ApproveAdRequestInput struct {
	RequestID string
	AdPrice   float64
	AdminNote string
}

type RejectAdRequestInput struct {
	RequestID string
	AdminNote string
}

type SubmitPaymentProofInput struct {
	RequestID string
	SellerID  string

	PaymentMethod        string
	PaymentReference     string
	PaymentScreenshotURL string
	PaymentNote          string
}

type VerifyPaymentInput struct {
	RequestID string
	AdminNote string
}

type ListAdRequestsInput struct {
	Status string
	Page   int
	Limit  int
}
