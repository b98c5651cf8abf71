package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/mappers"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCommerceOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultCommerceOrderRepository(db *gorm.DB) *DefaultCommerceOrderRepository {
	return &DefaultCommerceOrderRepository{DB: db}
}

func (r *DefaultCommerceOrderRepository) GetByID(ctx context.Context, id string) (*domain.CommerceOrder, error) {
	var model models.CommerceOrderModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "order", ID: id}
		}
		return nil, err
	}
	return mappers.ToDomainCommerceOrder(&model), nil
}

func (r *DefaultCommerceOrderRepository) UpdatePayment(ctx context.Context, id, paymentStatus, paymentID, status string) error {
	updates := map[string]any{}
	if paymentStatus != "" {
		updates["payment_status"] = paymentStatus
	}
	if paymentID != "" {
		updates["payment_id"] = paymentID
	}
	if status != "" {
		updates["status"] = status
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).
		Model(&models.CommerceOrderModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update order payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "order", ID: id}
	}
	return nil
}
