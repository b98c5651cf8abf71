package mappers

import (
	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentRecord(model *models.PaymentRecordModel) *domain.PaymentRecord {
	var owner domain.PaymentOwner
	switch {
	case model.AdRequestID != nil:
		owner = domain.PaymentOwner{Kind: domain.OwnerAdRequest, ID: *model.AdRequestID}
	case model.OrderID != nil:
		owner = domain.PaymentOwner{Kind: domain.OwnerCommerceOrder, ID: *model.OrderID}
	}

	return &domain.PaymentRecord{
		ID:               model.ID,
		Owner:            owner,
		GatewayOrderID:   model.GatewayOrderID,
		GatewayPaymentID: model.GatewayPaymentID,
		Signature:        model.Signature,
		Amount:           model.Amount,
		Currency:         model.Currency,
		Status:           model.Status,
		FailureReason:    model.FailureReason,
		RefundAmount:     model.RefundAmount,
		RefundedAt:       model.RefundedAt,
		RefundReason:     model.RefundReason,
		PaidAt:           model.PaidAt,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMPaymentRecord(rec *domain.PaymentRecord) *models.PaymentRecordModel {
	model := &models.PaymentRecordModel{
		ID:               rec.ID,
		GatewayOrderID:   rec.GatewayOrderID,
		GatewayPaymentID: rec.GatewayPaymentID,
		Signature:        rec.Signature,
		Amount:           rec.Amount,
		Currency:         rec.Currency,
		Status:           rec.Status,
		FailureReason:    rec.FailureReason,
		RefundAmount:     rec.RefundAmount,
		RefundedAt:       rec.RefundedAt,
		RefundReason:     rec.RefundReason,
		PaidAt:           rec.PaidAt,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}

	ownerID := rec.Owner.ID
	switch rec.Owner.Kind {
	case domain.OwnerAdRequest:
		model.AdRequestID = &ownerID
	case domain.OwnerCommerceOrder:
		model.OrderID = &ownerID
	}

	return model
}
