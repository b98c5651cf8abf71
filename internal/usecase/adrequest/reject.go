package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

func (uc *DefaultAdRequestUsecase) Reject(ctx context.Context, input *adrequestdto.RejectAdRequestInput) (*domain.AdRequest, error) {
	if input.AdminNote == "" {
		return nil, &domain.ValidationError{Message: "a rejection note is required"}
	}

	request, err := uc.Requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.StatusPending && request.Status != domain.StatusPaymentPending {
		return nil, &domain.StateConflictError{Event: "reject", Current: string(request.Status)}
	}

	now := time.Now()
	request.Status = domain.StatusRejected
	request.AdminNote = input.AdminNote
	request.RejectedAt = &now
	if err := uc.Requests.Update(ctx, request); err != nil {
		return nil, err
	}

	uc.Metrics.RequestsRejectedTotal.Inc()

	uc.notify(domain.Notification{
		RecipientType: "Seller",
		RecipientID:   request.SellerID,
		Title:         "Ad Request Rejected",
		Message:       fmt.Sprintf("Your ad request for %q was rejected. Reason: %s", request.Content.ShopName, request.AdminNote),
		Link:          "/seller/ad-requests?requestId=" + request.ID,
		Priority:      "High",
	})

	return request, nil
}
