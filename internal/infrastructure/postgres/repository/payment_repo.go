package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/mappers"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

// SettleCapture inserts the payment record and applies the owner's
// paid-side transition in one transaction. The owner row is locked FOR
// UPDATE so two captures for the same owner serialize.
func (r *DefaultPaymentRepository) SettleCapture(ctx context.Context, rec *domain.PaymentRecord) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch rec.Owner.Kind {
		case domain.OwnerAdRequest:
			if err := settleAdRequest(tx, rec); err != nil {
				return err
			}
		case domain.OwnerCommerceOrder:
			if err := settleCommerceOrder(tx, rec); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown payment owner kind: %s", rec.Owner.Kind)
		}

		if err := tx.Create(mappers.ToGORMPaymentRecord(rec)).Error; err != nil {
			return fmt.Errorf("failed to create payment record: %w", err)
		}
		return nil
	})
	if err != nil {
		return &domain.TransactionAbortError{Err: err}
	}
	return nil
}

func settleAdRequest(tx *gorm.DB, rec *domain.PaymentRecord) error {
	var request models.AdRequestModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, "id = ?", rec.Owner.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.NotFoundError{Entity: "ad request", ID: rec.Owner.ID}
		}
		return err
	}

	request.PaymentStatus = domain.PaymentPaid
	request.PaymentMethod = "razorpay"
	request.PaymentReference = rec.GatewayPaymentID
	request.PaidAt = rec.PaidAt
	// Only pre-settlement states promote; a request already under
	// manual proof review (or in a terminal state) keeps its status and
	// records the payment as-is.
	switch request.Status {
	case domain.StatusPending, domain.StatusApproved:
		request.Status = domain.StatusPaymentVerified
	}

	if err := tx.Save(&request).Error; err != nil {
		return fmt.Errorf("failed to update ad request: %w", err)
	}
	return nil
}

func settleCommerceOrder(tx *gorm.DB, rec *domain.PaymentRecord) error {
	var order models.CommerceOrderModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ?", rec.Owner.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.NotFoundError{Entity: "order", ID: rec.Owner.ID}
		}
		return err
	}

	order.PaymentStatus = "Paid"
	order.PaymentID = rec.GatewayPaymentID
	if order.Status == "Pending" {
		order.Status = "Received"
	}

	if err := tx.Save(&order).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *DefaultPaymentRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *DefaultPaymentRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.PaymentRecord, error) {
	return r.findOne(ctx, "gateway_order_id = ?", gatewayOrderID)
}

func (r *DefaultPaymentRepository) FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*domain.PaymentRecord, error) {
	return r.findOne(ctx, "gateway_payment_id = ?", gatewayPaymentID)
}

func (r *DefaultPaymentRepository) findOne(ctx context.Context, query string, arg string) (*domain.PaymentRecord, error) {
	var model models.PaymentRecordModel
	if err := r.DB.WithContext(ctx).First(&model, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "payment record", ID: arg}
		}
		return nil, err
	}
	return mappers.ToDomainPaymentRecord(&model), nil
}

func (r *DefaultPaymentRepository) Update(ctx context.Context, rec *domain.PaymentRecord) error {
	model := mappers.ToGORMPaymentRecord(rec)
	if err := r.DB.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update payment record: %w", err)
	}
	return nil
}
