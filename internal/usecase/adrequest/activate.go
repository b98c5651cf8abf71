package usecase

import (
	"context"
	"fmt"

	"github.com/hellolocal/shopads-service/internal/domain"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

// VerifyPaymentAndActivate is the admin settlement step: confirm the
// payment (manual proof or an already gateway-verified capture), re-run
// the capacity guard, and materialize the live ad. The capacity check
// and both writes happen under the range lock.
func (uc *DefaultAdRequestUsecase) VerifyPaymentAndActivate(ctx context.Context, input *adrequestdto.VerifyPaymentInput) (*domain.AdRequest, *domain.ShopAd, error) {
	request, err := uc.Requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, nil, err
	}
	if request.Status != domain.StatusPaymentPending && request.Status != domain.StatusPaymentVerified {
		return nil, nil, &domain.StateConflictError{Event: "verify payment for", Current: string(request.Status)}
	}

	var shopAd *domain.ShopAd
	err = uc.Guard.WithRangeLock(ctx, request.StartDate, request.DurationDays, func() error {
		// The pre-lock read may be stale: a concurrent settlement can
		// land between it and lock acquisition.
		current, err := uc.Requests.GetByID(ctx, input.RequestID)
		if err != nil {
			return err
		}
		if current.Status != domain.StatusPaymentPending && current.Status != domain.StatusPaymentVerified {
			return &domain.StateConflictError{Event: "verify payment for", Current: string(current.Status)}
		}
		request = current

		if err := uc.Guard.Reserve(ctx, request.StartDate, request.DurationDays, request.ID); err != nil {
			return err
		}

		ad, err := uc.materialize(ctx, request, input.AdminNote)
		if err != nil {
			return err
		}
		shopAd = ad
		return nil
	})
	if err != nil {
		if _, full := err.(*domain.CapacityExceededError); full {
			uc.Metrics.CapacityRejectedTotal.Inc()
		}
		return nil, nil, err
	}

	uc.Metrics.AdsActivatedTotal.Inc()

	uc.notify(domain.Notification{
		RecipientType: "Seller",
		RecipientID:   request.SellerID,
		Title:         "Your Ad is Now Live!",
		Message:       fmt.Sprintf("Your ad for %q is now showing on the homepage carousel. It will run until %s.", request.Content.ShopName, request.EndDate.Format("2006-01-02")),
		Link:          "/seller/ad-requests?requestId=" + request.ID,
		Priority:      "High",
	})

	return request, shopAd, nil
}

// SetShopAdActive toggles a materialized ad independently of its
// originating request. Re-activation consumes capacity again, so it
// goes back through the guard with the ad excluded from its own count.
func (uc *DefaultAdRequestUsecase) SetShopAdActive(ctx context.Context, shopAdID string, active bool) (*domain.ShopAd, error) {
	ad, err := uc.ShopAds.GetByID(ctx, shopAdID)
	if err != nil {
		return nil, err
	}
	if ad.IsActive == active {
		return ad, nil
	}

	if !active {
		ad.IsActive = false
		if err := uc.ShopAds.Update(ctx, ad); err != nil {
			return nil, err
		}
		return ad, nil
	}

	days := int(ad.EndDate.Sub(ad.StartDate).Hours() / 24)
	if days < 1 {
		days = 1
	}

	err = uc.Guard.WithRangeLock(ctx, ad.StartDate, days, func() error {
		if err := uc.Guard.Reserve(ctx, ad.StartDate, days, ad.ID); err != nil {
			return err
		}
		ad.IsActive = true
		return uc.ShopAds.Update(ctx, ad)
	})
	if err != nil {
		if _, full := err.(*domain.CapacityExceededError); full {
			uc.Metrics.CapacityRejectedTotal.Inc()
		}
		return nil, err
	}

	return ad, nil
}
