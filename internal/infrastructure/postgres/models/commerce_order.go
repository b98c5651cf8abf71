package models

import "time"

type CommerceOrderModel struct {
	ID            string  `gorm:"primaryKey;type:uuid"`
	CustomerID    string  `gorm:"index:idx_order_customer"`
	Total         float64 `gorm:"not null"`
	Status        string  `gorm:"not null"`
	PaymentStatus string  `gorm:"not null"`
	PaymentID     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommerceOrderModel) TableName() string { return "commerce_orders" }
