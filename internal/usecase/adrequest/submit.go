package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/usecase/availability"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

const (
	defaultBadge      = "FEATURED"
	defaultBadgeColor = "#FF4B6E"
	defaultCTAText    = "Visit Shop"
)

func (uc *DefaultAdRequestUsecase) Submit(ctx context.Context, input *adrequestdto.SubmitAdRequestInput) (*domain.AdRequest, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}
	if err := uc.checkPricing(input.DurationDays, input.RequestedPrice); err != nil {
		return nil, err
	}

	seller, err := uc.Sellers.GetSeller(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}

	start := availability.DayStart(input.StartDate)
	end := start.AddDate(0, 0, input.DurationDays)

	hasProof := input.PaymentReference != "" || input.PaymentScreenshotURL != ""
	status := domain.StatusPending
	if hasProof {
		status = domain.StatusPaymentPending
	}

	request := &domain.AdRequest{
		ID:          uuid.New().String(),
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		SellerEmail: seller.Email,
		SellerPhone: seller.Phone,
		Content: domain.AdContent{
			ShopName:    input.ShopName,
			Tagline:     input.Tagline,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Badge:       orDefault(input.Badge, defaultBadge),
			BadgeColor:  orDefault(input.BadgeColor, defaultBadgeColor),
			CTAText:     orDefault(input.CTAText, defaultCTAText),
			CTALink:     input.CTALink,
		},
		StartDate:            start,
		EndDate:              end,
		DurationDays:         input.DurationDays,
		RequestedPrice:       input.RequestedPrice,
		PaymentStatus:        domain.PaymentUnpaid,
		PaymentMethod:        orDefault(input.PaymentMethod, "UPI"),
		PaymentReference:     input.PaymentReference,
		PaymentScreenshotURL: input.PaymentScreenshotURL,
		PaymentNote:          input.PaymentNote,
		Status:               status,
	}

	err = uc.Guard.WithRangeLock(ctx, start, input.DurationDays, func() error {
		if err := uc.Guard.Reserve(ctx, start, input.DurationDays, ""); err != nil {
			return err
		}
		return uc.Requests.Create(ctx, request)
	})
	if err != nil {
		if _, full := err.(*domain.CapacityExceededError); full {
			uc.Metrics.CapacityRejectedTotal.Inc()
		}
		return nil, err
	}

	uc.Metrics.RequestsSubmittedTotal.WithLabelValues(string(status)).Inc()

	title := "New Ad Request from Seller"
	message := fmt.Sprintf("%s has requested a shop ad for %q (%d days).", request.SellerName, request.Content.ShopName, request.DurationDays)
	priority := "High"
	if hasProof {
		title = "New Ad & Payment Submitted"
		message = fmt.Sprintf("%s submitted an ad for %q with payment proof. Please verify & go live.", request.SellerName, request.Content.ShopName)
		priority = "Urgent"
	}
	uc.notify(domain.Notification{
		RecipientType: "Admin",
		Title:         title,
		Message:       message,
		Link:          "/admin/shop-ads?tab=requests&requestId=" + request.ID,
		Priority:      priority,
	})

	return request, nil
}

// checkPricing enforces the quoted-price law: the seller's asking price
// must equal duration times the configured day rate.
func (uc *DefaultAdRequestUsecase) checkPricing(durationDays int, requestedPrice float64) error {
	expected := float64(durationDays) * uc.PricePerDay
	if math.Abs(requestedPrice-expected) > 1e-9 {
		return &domain.ValidationError{
			Message: fmt.Sprintf("requested price %.2f does not match %d days at %.2f per day", requestedPrice, durationDays, uc.PricePerDay),
		}
	}
	return nil
}

func validateSubmission(input *adrequestdto.SubmitAdRequestInput) error {
	switch {
	case input.ShopName == "":
		return &domain.ValidationError{Message: "shop name is required"}
	case input.Tagline == "":
		return &domain.ValidationError{Message: "tagline is required"}
	case input.ImageURL == "":
		return &domain.ValidationError{Message: "image is required"}
	case input.DurationDays < 1:
		return &domain.ValidationError{Message: "duration must be at least 1 day"}
	case input.StartDate.IsZero():
		return &domain.ValidationError{Message: "start date is required"}
	case input.RequestedPrice < 0:
		return &domain.ValidationError{Message: "requested price must not be negative"}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
