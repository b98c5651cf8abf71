package domain

import "time"

type OwnerKind string

const (
	OwnerCommerceOrder OwnerKind = "Order"
	OwnerAdRequest     OwnerKind = "AdRequest"
)

// PaymentOwner is the tagged owner reference of a PaymentRecord: exactly
// one kind, exactly one id, validated at construction.
type PaymentOwner struct {
	Kind OwnerKind
	ID   string
}

func NewPaymentOwner(kind OwnerKind, id string) (PaymentOwner, error) {
	if kind != OwnerCommerceOrder && kind != OwnerAdRequest {
		return PaymentOwner{}, &ValidationError{Message: "unknown payment owner kind: " + string(kind)}
	}
	if id == "" {
		return PaymentOwner{}, &ValidationError{Message: "payment owner id is required"}
	}
	return PaymentOwner{Kind: kind, ID: id}, nil
}

type PaymentRecordStatus string

const (
	PaymentRecordCompleted PaymentRecordStatus = "Completed"
	PaymentRecordFailed    PaymentRecordStatus = "Failed"
	PaymentRecordRefunded  PaymentRecordStatus = "Refunded"
)

// PaymentRecord is the settlement audit entry for one capture attempt.
// Webhook events referencing the same gateway identifiers update it in
// place; a gateway payment id is never inserted twice.
type PaymentRecord struct {
	ID    string
	Owner PaymentOwner

	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	Amount           float64
	Currency         string

	Status        PaymentRecordStatus
	FailureReason string

	RefundAmount *float64
	RefundedAt   *time.Time
	RefundReason string

	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
