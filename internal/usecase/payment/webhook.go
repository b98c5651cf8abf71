package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
)

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
		Refund struct {
			Entity struct {
				ID        string `json:"id"`
				PaymentID string `json:"payment_id"`
				Amount    int64  `json:"amount"`
			} `json:"entity"`
		} `json:"refund"`
	} `json:"payload"`
}

// HandleWebhook reconciles an asynchronous gateway event against the
// existing PaymentRecord. Events for unknown records are logged no-ops
// and duplicate delivery leaves state unchanged; retry policy belongs
// to the gateway, not here.
func (uc *DefaultPaymentUsecase) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !uc.verifyWebhookSignature(body, signature) {
		uc.Metrics.WebhookEventsTotal.WithLabelValues("unknown", "bad_signature").Inc()
		return &domain.PaymentVerificationError{Message: "invalid webhook signature"}
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		uc.Metrics.WebhookEventsTotal.WithLabelValues("unknown", "bad_payload").Inc()
		return &domain.ValidationError{Message: "malformed webhook payload"}
	}

	var err error
	switch payload.Event {
	case "payment.captured":
		err = uc.applyPaymentCaptured(ctx, payload.Payload.Payment.Entity.OrderID, payload.Payload.Payment.Entity.ID)
	case "payment.failed":
		err = uc.applyPaymentFailed(ctx, payload.Payload.Payment.Entity.OrderID, payload.Payload.Payment.Entity.ErrorDescription)
	case "refund.created":
		err = uc.applyRefundCreated(ctx, payload.Payload.Refund.Entity.PaymentID, payload.Payload.Refund.Entity.Amount)
	default:
		slog.Info("unhandled gateway webhook event", "event", payload.Event)
		uc.Metrics.WebhookEventsTotal.WithLabelValues(payload.Event, "ignored").Inc()
		return nil
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	uc.Metrics.WebhookEventsTotal.WithLabelValues(payload.Event, result).Inc()
	return err
}

func (uc *DefaultPaymentUsecase) applyPaymentCaptured(ctx context.Context, gatewayOrderID, gatewayPaymentID string) error {
	record, ok, err := uc.findRecordByOrderID(ctx, gatewayOrderID, "payment.captured")
	if err != nil || !ok {
		return err
	}

	// Duplicate delivery: already settled with this payment id.
	if record.Status == domain.PaymentRecordCompleted && record.GatewayPaymentID == gatewayPaymentID && record.PaidAt != nil {
		return nil
	}

	now := time.Now()
	record.Status = domain.PaymentRecordCompleted
	record.GatewayPaymentID = gatewayPaymentID
	record.PaidAt = &now
	if err := uc.Payments.Update(ctx, record); err != nil {
		return err
	}

	return uc.markOwnerPaid(ctx, record.Owner, gatewayPaymentID, now)
}

func (uc *DefaultPaymentUsecase) applyPaymentFailed(ctx context.Context, gatewayOrderID, reason string) error {
	record, ok, err := uc.findRecordByOrderID(ctx, gatewayOrderID, "payment.failed")
	if err != nil || !ok {
		return err
	}

	if record.Status == domain.PaymentRecordFailed && record.FailureReason == failureReason(reason) {
		return nil
	}

	record.Status = domain.PaymentRecordFailed
	record.FailureReason = failureReason(reason)
	if err := uc.Payments.Update(ctx, record); err != nil {
		return err
	}

	if record.Owner.Kind == domain.OwnerCommerceOrder {
		return uc.Orders.UpdatePayment(ctx, record.Owner.ID, "Failed", "", "")
	}
	return nil
}

func (uc *DefaultPaymentUsecase) applyRefundCreated(ctx context.Context, gatewayPaymentID string, amountMinor int64) error {
	record, err := uc.Payments.FindByGatewayPaymentID(ctx, gatewayPaymentID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			slog.Info("webhook for unknown payment, ignoring", "event", "refund.created", "gateway_payment_id", gatewayPaymentID)
			return nil
		}
		return err
	}

	amount := float64(amountMinor) / 100

	if record.Status == domain.PaymentRecordRefunded && record.RefundAmount != nil && *record.RefundAmount == amount {
		return nil
	}

	now := time.Now()
	record.Status = domain.PaymentRecordRefunded
	record.RefundAmount = &amount
	record.RefundedAt = &now
	if err := uc.Payments.Update(ctx, record); err != nil {
		return err
	}

	switch record.Owner.Kind {
	case domain.OwnerCommerceOrder:
		return uc.Orders.UpdatePayment(ctx, record.Owner.ID, "Refunded", "", "")
	case domain.OwnerAdRequest:
		request, err := uc.Requests.GetByID(ctx, record.Owner.ID)
		if err != nil {
			return err
		}
		request.PaymentStatus = domain.PaymentRefunded
		return uc.Requests.Update(ctx, request)
	}
	return nil
}

func (uc *DefaultPaymentUsecase) findRecordByOrderID(ctx context.Context, gatewayOrderID, event string) (*domain.PaymentRecord, bool, error) {
	record, err := uc.Payments.FindByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			slog.Info("webhook for unknown payment, ignoring", "event", event, "gateway_order_id", gatewayOrderID)
			return nil, false, nil
		}
		return nil, false, err
	}
	return record, true, nil
}

func (uc *DefaultPaymentUsecase) markOwnerPaid(ctx context.Context, owner domain.PaymentOwner, gatewayPaymentID string, paidAt time.Time) error {
	switch owner.Kind {
	case domain.OwnerCommerceOrder:
		return uc.Orders.UpdatePayment(ctx, owner.ID, "Paid", gatewayPaymentID, "")
	case domain.OwnerAdRequest:
		request, err := uc.Requests.GetByID(ctx, owner.ID)
		if err != nil {
			return err
		}
		request.PaymentStatus = domain.PaymentPaid
		request.PaymentReference = gatewayPaymentID
		request.PaidAt = &paidAt
		// Promotion is scoped to pre-settlement states; manual proof
		// review and terminal states keep their status.
		switch request.Status {
		case domain.StatusPending, domain.StatusApproved:
			request.Status = domain.StatusPaymentVerified
		}
		return uc.Requests.Update(ctx, request)
	}
	return nil
}

func failureReason(reason string) string {
	if reason == "" {
		return "Payment failed"
	}
	return reason
}
