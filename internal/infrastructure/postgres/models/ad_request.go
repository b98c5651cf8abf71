package models

import (
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
)

type AdRequestModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	SellerID    string `gorm:"not null;index:idx_seller"`
	SellerName  string
	SellerEmail string
	SellerPhone string

	ShopName    string `gorm:"not null"`
	Tagline     string
	Description string
	ImageURL    string
	Badge       string
	BadgeColor  string
	CTAText     string
	CTALink     string

	StartDate    time.Time `gorm:"not null;index:idx_request_range"`
	EndDate      time.Time `gorm:"not null;index:idx_request_range"`
	DurationDays int

	RequestedPrice float64
	AdPrice        float64

	PaymentStatus        domain.PaymentStatus `gorm:"default:Unpaid"`
	PaymentMethod        string
	PaymentReference     string
	PaymentScreenshotURL string
	PaymentNote          string
	PaidAt               *time.Time

	Status     domain.AdRequestStatus `gorm:"not null;index:idx_request_status"`
	AdminNote  string
	ApprovedAt *time.Time
	RejectedAt *time.Time

	ShopAdID string `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"index:idx_request_created"`
	UpdatedAt time.Time
}

func (AdRequestModel) TableName() string { return "ad_requests" }
