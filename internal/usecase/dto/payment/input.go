package paymentdto

import "github.com/hellolocal/shopads-service/internal/domain"

type CreateGatewayOrderInput struct {
	OwnerID   string
	OwnerKind domain.OwnerKind
	// CallerID is the authenticated identity; it must own the record
	// being paid for.
	CallerID string
}

type CaptureInput struct {
	OwnerID   string
	OwnerKind domain.OwnerKind
	CallerID  string

	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type RefundInput struct {
	PaymentID string
	// Amount of zero refunds the full captured amount.
	Amount float64
	Reason string
}
