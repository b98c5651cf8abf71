package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

// Approve records the admin-confirmed price and moves the request to
// Approved; the ad goes live only after the payment is settled and
// verified. Capacity is re-checked because the submission-time check
// may be stale by now.
func (uc *DefaultAdRequestUsecase) Approve(ctx context.Context, input *adrequestdto.ApproveAdRequestInput) (*domain.AdRequest, error) {
	if input.AdPrice < 0 {
		return nil, &domain.ValidationError{Message: "ad price must not be negative"}
	}

	request, err := uc.Requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.StatusPending {
		return nil, &domain.StateConflictError{Event: "approve", Current: string(request.Status)}
	}

	err = uc.Guard.WithRangeLock(ctx, request.StartDate, request.DurationDays, func() error {
		current, err := uc.Requests.GetByID(ctx, input.RequestID)
		if err != nil {
			return err
		}
		if current.Status != domain.StatusPending {
			return &domain.StateConflictError{Event: "approve", Current: string(current.Status)}
		}
		request = current

		if err := uc.Guard.Reserve(ctx, request.StartDate, request.DurationDays, request.ID); err != nil {
			return err
		}

		now := time.Now()
		request.Status = domain.StatusApproved
		request.AdPrice = input.AdPrice
		request.AdminNote = input.AdminNote
		request.ApprovedAt = &now
		return uc.Requests.Update(ctx, request)
	})
	if err != nil {
		if _, full := err.(*domain.CapacityExceededError); full {
			uc.Metrics.CapacityRejectedTotal.Inc()
		}
		return nil, err
	}

	uc.Metrics.RequestsApprovedTotal.Inc()

	uc.notify(domain.Notification{
		RecipientType: "Seller",
		RecipientID:   request.SellerID,
		Title:         "Ad Request Approved",
		Message:       fmt.Sprintf("Your ad request for %q was approved at %.2f. Complete the payment to go live.", request.Content.ShopName, request.AdPrice),
		Link:          "/seller/ad-requests?requestId=" + request.ID,
		Priority:      "High",
	})

	return request, nil
}
