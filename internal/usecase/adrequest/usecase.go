package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/metrics"
	"github.com/hellolocal/shopads-service/internal/usecase/availability"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

type AdRequestUsecase interface {
	// Seller surface.
	Submit(ctx context.Context, input *adrequestdto.SubmitAdRequestInput) (*domain.AdRequest, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.AdRequest, error)
	GetForSeller(ctx context.Context, sellerID, requestID string) (*domain.AdRequest, error)
	SubmitPaymentProof(ctx context.Context, input *adrequestdto.SubmitPaymentProofInput) (*domain.AdRequest, error)
	Cancel(ctx context.Context, sellerID, requestID string) error
	Availability(ctx context.Context, start time.Time, durationDays int) (*domain.RangeAvailability, error)

	// Admin surface.
	List(ctx context.Context, input *adrequestdto.ListAdRequestsInput) ([]*domain.AdRequest, int64, error)
	GetByID(ctx context.Context, requestID string) (*domain.AdRequest, error)
	Approve(ctx context.Context, input *adrequestdto.ApproveAdRequestInput) (*domain.AdRequest, error)
	Reject(ctx context.Context, input *adrequestdto.RejectAdRequestInput) (*domain.AdRequest, error)
	VerifyPaymentAndActivate(ctx context.Context, input *adrequestdto.VerifyPaymentInput) (*domain.AdRequest, *domain.ShopAd, error)
	Stats(ctx context.Context) (*adrequestdto.RequestStats, error)

	// SweepExpired is the hook for an external scheduler; the core
	// never runs it on its own clock.
	SweepExpired(ctx context.Context) (int, error)

	SetShopAdActive(ctx context.Context, shopAdID string, active bool) (*domain.ShopAd, error)
}

type DefaultAdRequestUsecase struct {
	Requests domain.AdRequestRepository
	ShopAds  domain.ShopAdRepository
	Guard    *availability.Guard
	Sellers  domain.SellerDirectory
	Notifier domain.NotifierPort
	Metrics  *metrics.AdMetrics

	PricePerDay float64
	MaxAds      int
}

func NewDefaultAdRequestUsecase(
	requests domain.AdRequestRepository,
	shopAds domain.ShopAdRepository,
	guard *availability.Guard,
	sellers domain.SellerDirectory,
	notifier domain.NotifierPort,
	adMetrics *metrics.AdMetrics,
	pricePerDay float64,
	maxAds int,
) *DefaultAdRequestUsecase {
	return &DefaultAdRequestUsecase{
		Requests:    requests,
		ShopAds:     shopAds,
		Guard:       guard,
		Sellers:     sellers,
		Notifier:    notifier,
		Metrics:     adMetrics,
		PricePerDay: pricePerDay,
		MaxAds:      maxAds,
	}
}

// notify publishes to the sink without ever blocking or failing the
// operation that triggered it.
func (uc *DefaultAdRequestUsecase) notify(n domain.Notification) {
	go func(n domain.Notification) {
		if err := uc.Notifier.Notify(context.Background(), n); err != nil {
			slog.Error("failed to publish notification", "title", n.Title, "error", err.Error())
		}
	}(n)
}
