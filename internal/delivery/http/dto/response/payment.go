package response

import paymentdto "github.com/hellolocal/shopads-service/internal/usecase/dto/payment"

type GatewayOrderView struct {
	OrderID  string `json:"orderId"`
	KeyID    string `json:"keyId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

func ToGatewayOrderView(out *paymentdto.GatewayOrderOutput) GatewayOrderView {
	return GatewayOrderView{
		OrderID:  out.GatewayOrderID,
		KeyID:    out.GatewayKeyID,
		Amount:   out.AmountMinor,
		Currency: out.Currency,
		Receipt:  out.Receipt,
	}
}

type CaptureView struct {
	PaymentID        string `json:"paymentId"`
	GatewayPaymentID string `json:"razorpayPaymentId"`
	OwnerID          string `json:"ownerId"`
}

func ToCaptureView(out *paymentdto.CaptureOutput) CaptureView {
	return CaptureView{
		PaymentID:        out.PaymentID,
		GatewayPaymentID: out.GatewayPaymentID,
		OwnerID:          out.OwnerID,
	}
}

type RefundView struct {
	RefundID string  `json:"refundId"`
	Amount   float64 `json:"amount"`
}

func ToRefundView(out *paymentdto.RefundOutput) RefundView {
	return RefundView{RefundID: out.RefundID, Amount: out.Amount}
}
