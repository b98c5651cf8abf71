package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hellolocal/shopads-service/internal/domain"
	publisher "github.com/hellolocal/shopads-service/internal/infrastructure/kafka"
	paymentdto "github.com/hellolocal/shopads-service/internal/usecase/dto/payment"
)

// Capture settles a completed checkout: verify the signature before any
// storage is touched, then create the payment record and update the
// owner inside one transaction. Post-commit bookkeeping is best-effort
// and never unwinds the settlement.
func (uc *DefaultPaymentUsecase) Capture(ctx context.Context, input *paymentdto.CaptureInput) (*paymentdto.CaptureOutput, error) {
	if input.GatewayOrderID == "" || input.GatewayPaymentID == "" || input.Signature == "" {
		return nil, &domain.ValidationError{Message: "missing payment verification parameters"}
	}

	owner, err := domain.NewPaymentOwner(input.OwnerKind, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if !uc.verifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature) {
		uc.Metrics.PaymentVerificationFailures.Inc()
		return nil, &domain.PaymentVerificationError{Message: "invalid payment signature"}
	}

	amount, err := uc.resolveOwnerAmount(ctx, owner, input.CallerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &domain.PaymentRecord{
		ID:               uuid.New().String(),
		Owner:            owner,
		GatewayOrderID:   input.GatewayOrderID,
		GatewayPaymentID: input.GatewayPaymentID,
		Signature:        input.Signature,
		Amount:           amount,
		Currency:         uc.Currency,
		Status:           domain.PaymentRecordCompleted,
		PaidAt:           &now,
	}

	started := time.Now()
	if err := uc.Payments.SettleCapture(ctx, record); err != nil {
		return nil, err
	}
	uc.Metrics.CaptureDuration.Observe(time.Since(started).Seconds())

	uc.Metrics.PaymentsCapturedTotal.WithLabelValues(string(owner.Kind)).Inc()
	uc.Metrics.PaymentsCapturedAmountTotal.WithLabelValues(string(owner.Kind), uc.Currency).Add(amount)

	if owner.Kind == domain.OwnerCommerceOrder {
		go func(event publisher.CommissionEvent) {
			if err := publisher.PublishCommission(uc.Events, event); err != nil {
				slog.Error("failed to publish commission event", "order_id", event.OrderID, "error", err.Error())
			}
		}(publisher.CommissionEvent{
			OrderID:   owner.ID,
			PaymentID: record.ID,
			Amount:    amount,
			Currency:  uc.Currency,
		})
	}

	return &paymentdto.CaptureOutput{
		PaymentID:        record.ID,
		GatewayPaymentID: record.GatewayPaymentID,
		OwnerID:          owner.ID,
	}, nil
}
