package domain

import "context"

type PaymentRepository interface {
	// SettleCapture creates the payment record and applies the owner's
	// payment-field/status update inside one transaction. Any failure
	// rolls back both writes and surfaces as TransactionAbortError.
	SettleCapture(ctx context.Context, rec *PaymentRecord) error

	GetByID(ctx context.Context, id string) (*PaymentRecord, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*PaymentRecord, error)
	FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*PaymentRecord, error)
	Update(ctx context.Context, rec *PaymentRecord) error
}
