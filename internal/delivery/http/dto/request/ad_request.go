package request

type SubmitAdRequest struct {
	ShopName    string `json:"shopName" binding:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Badge       string `json:"badge"`
	BadgeColor  string `json:"badgeColor"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`

	StartDate      string  `json:"startDate" binding:"required"`
	DurationDays   int     `json:"durationDays"`
	RequestedPrice float64 `json:"requestedPrice"`

	PaymentMethod     string `json:"paymentMethod"`
	PaymentReference  string `json:"paymentReference"`
	PaymentScreenshot string `json:"paymentScreenshot"`
	PaymentNote       string `json:"paymentNote"`
}

type PaymentProofRequest struct {
	PaymentMethod     string `json:"paymentMethod"`
	PaymentReference  string `json:"paymentReference"`
	PaymentScreenshot string `json:"paymentScreenshot"`
	PaymentNote       string `json:"paymentNote"`
}

type ApproveAdRequest struct {
	AdPrice   float64 `json:"adPrice"`
	AdminNote string  `json:"adminNote"`
}

type RejectAdRequest struct {
	AdminNote string `json:"adminNote"`
}

type VerifyPaymentRequest struct {
	AdminNote string `json:"adminNote"`
}

type SetShopAdActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
