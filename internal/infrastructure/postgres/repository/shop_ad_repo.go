package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/mappers"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultShopAdRepository struct {
	DB *gorm.DB
}

func NewDefaultShopAdRepository(db *gorm.DB) *DefaultShopAdRepository {
	return &DefaultShopAdRepository{DB: db}
}

func (r *DefaultShopAdRepository) GetByID(ctx context.Context, id string) (*domain.ShopAd, error) {
	var model models.ShopAdModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "shop ad", ID: id}
		}
		return nil, err
	}
	return mappers.ToDomainShopAd(&model), nil
}

func (r *DefaultShopAdRepository) Update(ctx context.Context, ad *domain.ShopAd) error {
	model := mappers.ToGORMShopAd(ad)
	if err := r.DB.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update shop ad: %w", err)
	}
	return nil
}

func (r *DefaultShopAdRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.ShopAdModel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active shop ads: %w", err)
	}
	return count, nil
}

func (r *DefaultShopAdRepository) ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	var adModels []models.ShopAdModel
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date < ? AND end_date > ?", to, from).
		Find(&adModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active shop ads: %w", err)
	}

	intervals := make([]domain.Interval, len(adModels))
	for i, model := range adModels {
		intervals[i] = domain.Interval{ID: model.ID, Start: model.StartDate, End: model.EndDate}
	}
	return intervals, nil
}

func (r *DefaultShopAdRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).
		Model(&models.ShopAdModel{}).
		Where("is_active = ?", true).
		Where("end_date <= ?", now).
		Update("is_active", false)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate expired shop ads: %w", result.Error)
	}
	return result.RowsAffected, nil
}
