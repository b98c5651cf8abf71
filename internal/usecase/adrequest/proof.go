package usecase

import (
	"context"
	"fmt"

	"github.com/hellolocal/shopads-service/internal/domain"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

// SubmitPaymentProof stores the seller's manual payment evidence and
// hands the request to the admin for verification.
func (uc *DefaultAdRequestUsecase) SubmitPaymentProof(ctx context.Context, input *adrequestdto.SubmitPaymentProofInput) (*domain.AdRequest, error) {
	request, err := uc.Requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.SellerID != input.SellerID {
		return nil, &domain.AuthorizationError{Message: "ad request belongs to another seller"}
	}
	if request.Status != domain.StatusApproved {
		return nil, &domain.StateConflictError{Event: "submit payment for", Current: string(request.Status)}
	}
	if input.PaymentReference == "" && input.PaymentScreenshotURL == "" {
		return nil, &domain.ValidationError{Message: "payment reference or screenshot is required"}
	}

	request.PaymentMethod = orDefault(input.PaymentMethod, "UPI")
	request.PaymentReference = input.PaymentReference
	request.PaymentScreenshotURL = input.PaymentScreenshotURL
	request.PaymentNote = input.PaymentNote
	request.Status = domain.StatusPaymentPending
	if err := uc.Requests.Update(ctx, request); err != nil {
		return nil, err
	}

	uc.notify(domain.Notification{
		RecipientType: "Admin",
		Title:         "Payment Proof Submitted",
		Message:       fmt.Sprintf("%s has submitted payment proof for ad %q. Please verify.", request.SellerName, request.Content.ShopName),
		Link:          "/admin/shop-ads?tab=requests&requestId=" + request.ID,
		Priority:      "Urgent",
	})

	return request, nil
}
