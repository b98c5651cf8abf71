package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/metrics"
	paymentdto "github.com/hellolocal/shopads-service/internal/usecase/dto/payment"
)

// mockPaymentPrefix marks gateway payment ids that bypass signature
// verification. Only honored outside production.
const mockPaymentPrefix = "mock_"

type PaymentUsecase interface {
	CreateGatewayOrder(ctx context.Context, input *paymentdto.CreateGatewayOrderInput) (*paymentdto.GatewayOrderOutput, error)
	Capture(ctx context.Context, input *paymentdto.CaptureInput) (*paymentdto.CaptureOutput, error)
	Refund(ctx context.Context, input *paymentdto.RefundInput) (*paymentdto.RefundOutput, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type DefaultPaymentUsecase struct {
	Payments domain.PaymentRepository
	Requests domain.AdRequestRepository
	Orders   domain.CommerceOrderRepository
	Gateway  domain.PaymentGateway
	Events   domain.PublisherPort
	Metrics  *metrics.AdMetrics

	KeySecret     string
	WebhookSecret string
	Currency      string
	Production    bool
}

func NewDefaultPaymentUsecase(
	payments domain.PaymentRepository,
	requests domain.AdRequestRepository,
	orders domain.CommerceOrderRepository,
	gateway domain.PaymentGateway,
	events domain.PublisherPort,
	adMetrics *metrics.AdMetrics,
	keySecret, webhookSecret, currency string,
	production bool,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		Payments:      payments,
		Requests:      requests,
		Orders:        orders,
		Gateway:       gateway,
		Events:        events,
		Metrics:       adMetrics,
		KeySecret:     keySecret,
		WebhookSecret: webhookSecret,
		Currency:      currency,
		Production:    production,
	}
}

// verifySignature checks the HMAC-SHA256 of "orderID|paymentID" against
// the gateway-supplied signature. Fails closed on any mismatch.
func (uc *DefaultPaymentUsecase) verifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if !uc.Production && strings.HasPrefix(gatewayPaymentID, mockPaymentPrefix) {
		return true
	}

	mac := hmac.New(sha256.New, []byte(uc.KeySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (uc *DefaultPaymentUsecase) verifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(uc.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
