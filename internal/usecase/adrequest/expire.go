package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
)

// SweepExpired marks Live requests whose range has passed as Expired
// and deactivates orphaned ads past their end date. Invoked by an
// external scheduler through the private surface; nothing in this core
// runs it on a clock.
func (uc *DefaultAdRequestUsecase) SweepExpired(ctx context.Context) (int, error) {
	now := time.Now()

	expired, err := uc.Requests.FindLiveExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, request := range expired {
		request.Status = domain.StatusExpired
		if err := uc.Requests.Update(ctx, request); err != nil {
			slog.Error("failed to expire ad request", "request_id", request.ID, "error", err.Error())
			continue
		}

		if request.ShopAdID != "" {
			ad, err := uc.ShopAds.GetByID(ctx, request.ShopAdID)
			if err == nil && ad.IsActive {
				ad.IsActive = false
				if err := uc.ShopAds.Update(ctx, ad); err != nil {
					slog.Error("failed to deactivate expired shop ad", "shop_ad_id", ad.ID, "error", err.Error())
				}
			}
		}

		swept++
		uc.Metrics.AdsExpiredTotal.Inc()
	}

	// Ads seeded or edited outside the request flow expire too.
	orphans, err := uc.ShopAds.DeactivateExpired(ctx, now)
	if err != nil {
		slog.Error("failed to deactivate expired orphan ads", "error", err.Error())
	}

	return swept + int(orphans), nil
}
