package usecase

import (
	"context"

	"github.com/hellolocal/shopads-service/internal/domain"
)

// Cancel hard-deletes a request; only Pending and Rejected requests can
// be withdrawn, and nothing survives the delete.
func (uc *DefaultAdRequestUsecase) Cancel(ctx context.Context, sellerID, requestID string) error {
	request, err := uc.Requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.SellerID != sellerID {
		return &domain.AuthorizationError{Message: "ad request belongs to another seller"}
	}
	if request.Status != domain.StatusPending && request.Status != domain.StatusRejected {
		return &domain.StateConflictError{Event: "cancel", Current: string(request.Status)}
	}

	if err := uc.Requests.Delete(ctx, request.ID); err != nil {
		return err
	}

	uc.Metrics.RequestsCancelledTotal.Inc()
	return nil
}
