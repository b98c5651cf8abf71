package response

import (
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

type AdContentView struct {
	ShopName    string `json:"shopName"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Badge       string `json:"badge"`
	BadgeColor  string `json:"badgeColor"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink,omitempty"`
}

type AdRequestView struct {
	ID          string `json:"id"`
	SellerID    string `json:"sellerId"`
	SellerName  string `json:"sellerName,omitempty"`
	SellerEmail string `json:"sellerEmail,omitempty"`
	SellerPhone string `json:"sellerPhone,omitempty"`

	Content AdContentView `json:"content"`

	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	DurationDays int    `json:"durationDays"`

	RequestedPrice float64 `json:"requestedPrice"`
	AdPrice        float64 `json:"adPrice,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	AdminNote     string `json:"adminNote,omitempty"`

	PaymentMethod        string     `json:"paymentMethod,omitempty"`
	PaymentReference     string     `json:"paymentReference,omitempty"`
	PaymentScreenshotURL string     `json:"paymentScreenshot,omitempty"`
	PaidAt               *time.Time `json:"paidAt,omitempty"`

	ShopAdID string `json:"shopAdId,omitempty"`

	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func ToAdRequestView(req *domain.AdRequest) AdRequestView {
	return AdRequestView{
		ID:          req.ID,
		SellerID:    req.SellerID,
		SellerName:  req.SellerName,
		SellerEmail: req.SellerEmail,
		SellerPhone: req.SellerPhone,
		Content: AdContentView{
			ShopName:    req.Content.ShopName,
			Tagline:     req.Content.Tagline,
			Description: req.Content.Description,
			ImageURL:    req.Content.ImageURL,
			Badge:       req.Content.Badge,
			BadgeColor:  req.Content.BadgeColor,
			CTAText:     req.Content.CTAText,
			CTALink:     req.Content.CTALink,
		},
		StartDate:            req.StartDate.Format("2006-01-02"),
		EndDate:              req.EndDate.Format("2006-01-02"),
		DurationDays:         req.DurationDays,
		RequestedPrice:       req.RequestedPrice,
		AdPrice:              req.AdPrice,
		Status:               string(req.Status),
		PaymentStatus:        string(req.PaymentStatus),
		AdminNote:            req.AdminNote,
		PaymentMethod:        req.PaymentMethod,
		PaymentReference:     req.PaymentReference,
		PaymentScreenshotURL: req.PaymentScreenshotURL,
		PaidAt:               req.PaidAt,
		ShopAdID:             req.ShopAdID,
		ApprovedAt:           req.ApprovedAt,
		RejectedAt:           req.RejectedAt,
		CreatedAt:            req.CreatedAt,
		UpdatedAt:            req.UpdatedAt,
	}
}

func ToAdRequestViews(requests []*domain.AdRequest) []AdRequestView {
	views := make([]AdRequestView, len(requests))
	for i, req := range requests {
		views[i] = ToAdRequestView(req)
	}
	return views
}

type ShopAdView struct {
	ID           string        `json:"id"`
	DisplayOrder int           `json:"displayOrder"`
	IsActive     bool          `json:"isActive"`
	Content      AdContentView `json:"content"`
	ContactName  string        `json:"contactName,omitempty"`
	ContactPhone string        `json:"contactPhone,omitempty"`
	ContactEmail string        `json:"contactEmail,omitempty"`
	RequestedBy  string        `json:"requestedBy,omitempty"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	ApprovedAt   *time.Time    `json:"approvedAt,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

func ToShopAdView(ad *domain.ShopAd) ShopAdView {
	return ShopAdView{
		ID:           ad.ID,
		DisplayOrder: ad.DisplayOrder,
		IsActive:     ad.IsActive,
		Content: AdContentView{
			ShopName:    ad.Content.ShopName,
			Tagline:     ad.Content.Tagline,
			Description: ad.Content.Description,
			ImageURL:    ad.Content.ImageURL,
			Badge:       ad.Content.Badge,
			BadgeColor:  ad.Content.BadgeColor,
			CTAText:     ad.Content.CTAText,
			CTALink:     ad.Content.CTALink,
		},
		ContactName:  ad.ContactName,
		ContactPhone: ad.ContactPhone,
		ContactEmail: ad.ContactEmail,
		RequestedBy:  ad.RequestedBy,
		StartDate:    ad.StartDate.Format("2006-01-02"),
		EndDate:      ad.EndDate.Format("2006-01-02"),
		ApprovedAt:   ad.ApprovedAt,
		CreatedAt:    ad.CreatedAt,
	}
}

type DayAvailabilityView struct {
	Date           string `json:"date"`
	Booked         int    `json:"booked"`
	SlotsAvailable int    `json:"slotsAvailable"`
}

type AvailabilityView struct {
	MaxAds         int                   `json:"maxAds"`
	FullyAvailable bool                  `json:"fullyAvailable"`
	PerDay         []DayAvailabilityView `json:"perDay"`
}

func ToAvailabilityView(rng *domain.RangeAvailability, maxAds int) AvailabilityView {
	perDay := make([]DayAvailabilityView, len(rng.PerDay))
	for i, day := range rng.PerDay {
		perDay[i] = DayAvailabilityView{
			Date:           day.Date.Format("2006-01-02"),
			Booked:         day.Booked,
			SlotsAvailable: day.Available,
		}
	}
	return AvailabilityView{
		MaxAds:         maxAds,
		FullyAvailable: rng.FullyAvailable,
		PerDay:         perDay,
	}
}

type StatsView struct {
	Pending        int64 `json:"pending"`
	Approved       int64 `json:"approved"`
	PaymentPending int64 `json:"paymentPending"`
	Live           int64 `json:"live"`
	Rejected       int64 `json:"rejected"`
	ActiveAds      int64 `json:"activeAds"`
	MaxAds         int   `json:"maxAds"`
	SlotsAvailable int64 `json:"slotsAvailable"`
}

func ToStatsView(stats *adrequestdto.RequestStats) StatsView {
	slots := int64(stats.MaxAds) - stats.ActiveAds
	if slots < 0 {
		slots = 0
	}
	return StatsView{
		Pending:        stats.Pending,
		Approved:       stats.Approved,
		PaymentPending: stats.PaymentPending,
		Live:           stats.Live,
		Rejected:       stats.Rejected,
		ActiveAds:      stats.ActiveAds,
		MaxAds:         stats.MaxAds,
		SlotsAvailable: slots,
	}
}

type ListView struct {
	Items []AdRequestView `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
