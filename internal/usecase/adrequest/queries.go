package usecase

import (
	"context"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

func (uc *DefaultAdRequestUsecase) ListBySeller(ctx context.Context, sellerID string) ([]*domain.AdRequest, error) {
	requests, err := uc.Requests.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	applyLazyExpiry(requests)
	return requests, nil
}

func (uc *DefaultAdRequestUsecase) GetForSeller(ctx context.Context, sellerID, requestID string) (*domain.AdRequest, error) {
	request, err := uc.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.SellerID != sellerID {
		return nil, &domain.AuthorizationError{Message: "ad request belongs to another seller"}
	}
	request.Status = request.EffectiveStatus(time.Now())
	return request, nil
}

func (uc *DefaultAdRequestUsecase) List(ctx context.Context, input *adrequestdto.ListAdRequestsInput) ([]*domain.AdRequest, int64, error) {
	filter := domain.AdRequestFilter{
		Status: domain.AdRequestStatus(input.Status),
		Page:   input.Page,
		Limit:  input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	requests, total, err := uc.Requests.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	applyLazyExpiry(requests)
	return requests, total, nil
}

func (uc *DefaultAdRequestUsecase) GetByID(ctx context.Context, requestID string) (*domain.AdRequest, error) {
	request, err := uc.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	request.Status = request.EffectiveStatus(time.Now())
	return request, nil
}

func (uc *DefaultAdRequestUsecase) Availability(ctx context.Context, start time.Time, durationDays int) (*domain.RangeAvailability, error) {
	return uc.Guard.Availability(ctx, start, durationDays, "")
}

func (uc *DefaultAdRequestUsecase) Stats(ctx context.Context) (*adrequestdto.RequestStats, error) {
	counts, err := uc.Requests.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	activeAds, err := uc.ShopAds.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	uc.Metrics.ActiveAdsGauge.Set(float64(activeAds))

	return &adrequestdto.RequestStats{
		Pending:        counts[domain.StatusPending],
		Approved:       counts[domain.StatusApproved],
		PaymentPending: counts[domain.StatusPaymentPending],
		Live:           counts[domain.StatusLive],
		Rejected:       counts[domain.StatusRejected],
		ActiveAds:      activeAds,
		MaxAds:         uc.MaxAds,
	}, nil
}

// applyLazyExpiry rewrites Live statuses whose range has passed, so
// reads stay truthful without a background sweep.
func applyLazyExpiry(requests []*domain.AdRequest) {
	now := time.Now()
	for _, r := range requests {
		r.Status = r.EffectiveStatus(now)
	}
}
