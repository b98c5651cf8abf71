package models

import "time"

type ShopAdModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	DisplayOrder int    `gorm:"not null"`
	IsActive     bool   `gorm:"not null;index:idx_ad_active"`

	ShopName    string `gorm:"not null"`
	Tagline     string
	Description string
	ImageURL    string
	Badge       string
	BadgeColor  string
	CTAText     string
	CTALink     string

	ContactName  string
	ContactPhone string
	ContactEmail string
	RequestedBy  string

	ApprovedAt *time.Time
	StartDate  time.Time `gorm:"not null;index:idx_ad_range"`
	EndDate    time.Time `gorm:"not null;index:idx_ad_range"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShopAdModel) TableName() string { return "shop_ads" }
