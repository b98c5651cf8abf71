package usecase

import (
	"context"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	paymentdto "github.com/hellolocal/shopads-service/internal/usecase/dto/payment"
)

// Refund delegates to the gateway then marks the record Refunded. A
// single-record update; deliberately not transactional with anything
// else.
func (uc *DefaultPaymentUsecase) Refund(ctx context.Context, input *paymentdto.RefundInput) (*paymentdto.RefundOutput, error) {
	record, err := uc.Payments.GetByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	if record.GatewayPaymentID == "" {
		return nil, &domain.ValidationError{Message: "payment has no gateway payment id"}
	}
	if record.Status == domain.PaymentRecordRefunded {
		return nil, &domain.StateConflictError{Event: "refund", Current: string(record.Status)}
	}

	amount := input.Amount
	if amount <= 0 {
		amount = record.Amount
	}

	reason := input.Reason
	if reason == "" {
		reason = "Order cancelled"
	}

	refundID, err := uc.Gateway.Refund(ctx, record.GatewayPaymentID, toMinorUnits(amount), reason)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.Status = domain.PaymentRecordRefunded
	record.RefundAmount = &amount
	record.RefundedAt = &now
	record.RefundReason = reason
	if err := uc.Payments.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.Metrics.RefundsTotal.Inc()

	return &paymentdto.RefundOutput{RefundID: refundID, Amount: amount}, nil
}
