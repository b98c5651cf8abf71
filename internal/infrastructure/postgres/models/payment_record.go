package models

import (
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
)

// AdRequestID and OrderID are mutually exclusive owner columns; the
// mapper folds them back into the tagged PaymentOwner.
type PaymentRecordModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	AdRequestID *string `gorm:"type:uuid;index:idx_payment_ad_request"`
	OrderID     *string `gorm:"type:uuid;index:idx_payment_order"`

	GatewayOrderID   string `gorm:"uniqueIndex:idx_gateway_order"`
	GatewayPaymentID string `gorm:"uniqueIndex:idx_gateway_payment,where:gateway_payment_id <> ''"`
	Signature        string
	Amount           float64 `gorm:"not null"`
	Currency         string  `gorm:"not null"`

	Status        domain.PaymentRecordStatus `gorm:"not null;index:idx_payment_status"`
	FailureReason string

	RefundAmount *float64
	RefundedAt   *time.Time
	RefundReason string

	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PaymentRecordModel) TableName() string { return "payment_records" }
