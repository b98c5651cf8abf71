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

type DefaultAdRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultAdRequestRepository(db *gorm.DB) *DefaultAdRequestRepository {
	return &DefaultAdRequestRepository{DB: db}
}

func (r *DefaultAdRequestRepository) Create(ctx context.Context, req *domain.AdRequest) error {
	model := mappers.ToGORMAdRequest(req)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ad request: %w", err)
	}
	return nil
}

func (r *DefaultAdRequestRepository) GetByID(ctx context.Context, id string) (*domain.AdRequest, error) {
	var model models.AdRequestModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "ad request", ID: id}
		}
		return nil, err
	}
	return mappers.ToDomainAdRequest(&model), nil
}

func (r *DefaultAdRequestRepository) Update(ctx context.Context, req *domain.AdRequest) error {
	model := mappers.ToGORMAdRequest(req)
	if err := r.DB.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ad request: %w", err)
	}
	return nil
}

func (r *DefaultAdRequestRepository) Delete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Delete(&models.AdRequestModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ad request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "ad request", ID: id}
	}
	return nil
}

func (r *DefaultAdRequestRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.AdRequest, error) {
	var requestModels []models.AdRequestModel
	err := r.DB.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list seller ad requests: %w", err)
	}

	requests := make([]*domain.AdRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = mappers.ToDomainAdRequest(&model)
	}
	return requests, nil
}

func (r *DefaultAdRequestRepository) List(ctx context.Context, filter domain.AdRequestFilter) ([]*domain.AdRequest, int64, error) {
	var requestModels []models.AdRequestModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.AdRequestModel{})
	if filter.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filter.Status)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ad requests: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&requestModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find ad requests: %w", err)
	}

	requests := make([]*domain.AdRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = mappers.ToDomainAdRequest(&model)
	}
	return requests, total, nil
}

func (r *DefaultAdRequestRepository) CountByStatus(ctx context.Context) (map[domain.AdRequestStatus]int64, error) {
	type statusCount struct {
		Status domain.AdRequestStatus
		Count  int64
	}

	var rows []statusCount
	err := r.DB.WithContext(ctx).
		Model(&models.AdRequestModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count ad requests by status: %w", err)
	}

	counts := make(map[domain.AdRequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *DefaultAdRequestRepository) ListHoldingCapacity(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	capacityStatuses := []domain.AdRequestStatus{
		domain.StatusApproved,
		domain.StatusPaymentPending,
		domain.StatusPaymentVerified,
	}

	var requestModels []models.AdRequestModel
	err := r.DB.WithContext(ctx).
		Where("status IN ?", capacityStatuses).
		Where("start_date < ? AND end_date > ?", to, from).
		Find(&requestModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list capacity-holding requests: %w", err)
	}

	intervals := make([]domain.Interval, len(requestModels))
	for i, model := range requestModels {
		intervals[i] = domain.Interval{ID: model.ID, Start: model.StartDate, End: model.EndDate}
	}
	return intervals, nil
}

func (r *DefaultAdRequestRepository) ActivateWithShopAd(ctx context.Context, req *domain.AdRequest, ad *domain.ShopAd) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMShopAd(ad)).Error; err != nil {
			return fmt.Errorf("failed to create shop ad: %w", err)
		}
		if err := tx.Save(mappers.ToGORMAdRequest(req)).Error; err != nil {
			return fmt.Errorf("failed to update ad request: %w", err)
		}
		return nil
	})
	if err != nil {
		return &domain.TransactionAbortError{Err: err}
	}
	return nil
}

func (r *DefaultAdRequestRepository) FindLiveExpired(ctx context.Context, now time.Time) ([]*domain.AdRequest, error) {
	var requestModels []models.AdRequestModel
	err := r.DB.WithContext(ctx).
		Where("status = ?", domain.StatusLive).
		Where("end_date <= ?", now).
		Find(&requestModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired live requests: %w", err)
	}

	requests := make([]*domain.AdRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = mappers.ToDomainAdRequest(&model)
	}
	return requests, nil
}
