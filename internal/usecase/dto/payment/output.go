package paymentdto

type GatewayOrderOutput struct {
	GatewayOrderID string
	GatewayKeyID   string
	AmountMinor    int64
	Currency       string
	Receipt        string
}

type CaptureOutput struct {
	PaymentID        string
	GatewayPaymentID string
	OwnerID          string
}

type RefundOutput struct {
	RefundID string
	Amount   float64
}
