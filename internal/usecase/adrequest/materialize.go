package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hellolocal/shopads-service/internal/domain"
)

// materialize projects an approved, paid request into an independent
// ShopAd and stamps the request Live, in one transaction. One-way: the
// ad is appended at the end of the current active set and later edits
// to it never write back to the request.
func (uc *DefaultAdRequestUsecase) materialize(ctx context.Context, request *domain.AdRequest, adminNote string) (*domain.ShopAd, error) {
	activeCount, err := uc.ShopAds.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ad := &domain.ShopAd{
		ID:           uuid.New().String(),
		DisplayOrder: int(activeCount),
		IsActive:     true,
		Content:      request.Content,
		ContactName:  request.SellerName,
		ContactPhone: request.SellerPhone,
		ContactEmail: request.SellerEmail,
		RequestedBy:  fmt.Sprintf("%s (Seller)", request.SellerName),
		ApprovedAt:   &now,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
	}

	request.Status = domain.StatusLive
	request.PaymentStatus = domain.PaymentPaid
	request.PaidAt = &now
	request.ShopAdID = ad.ID
	if request.ApprovedAt == nil {
		request.ApprovedAt = &now
	}
	if adminNote != "" {
		request.AdminNote = adminNote
	}

	if err := uc.Requests.ActivateWithShopAd(ctx, request, ad); err != nil {
		return nil, err
	}

	uc.Metrics.ActiveAdsGauge.Set(float64(activeCount + 1))
	return ad, nil
}
