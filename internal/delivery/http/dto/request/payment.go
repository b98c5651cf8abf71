package request

type CreateGatewayOrderRequest struct {
	OwnerID   string `json:"ownerId" binding:"required"`
	OwnerKind string `json:"ownerKind" binding:"required"`
}

type VerifyPaymentCaptureRequest struct {
	OwnerID   string `json:"ownerId" binding:"required"`
	OwnerKind string `json:"ownerKind" binding:"required"`

	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

type RefundRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}
