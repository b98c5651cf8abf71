package usecase

import (
	"context"
	"math"

	"github.com/hellolocal/shopads-service/internal/domain"
	paymentdto "github.com/hellolocal/shopads-service/internal/usecase/dto/payment"
)

// CreateGatewayOrder opens a gateway-side order for the amount owed on
// the owning record. The gateway speaks minor units.
func (uc *DefaultPaymentUsecase) CreateGatewayOrder(ctx context.Context, input *paymentdto.CreateGatewayOrderInput) (*paymentdto.GatewayOrderOutput, error) {
	owner, err := domain.NewPaymentOwner(input.OwnerKind, input.OwnerID)
	if err != nil {
		return nil, err
	}

	amount, err := uc.resolveOwnerAmount(ctx, owner, input.CallerID)
	if err != nil {
		return nil, err
	}

	order, err := uc.Gateway.CreateOrder(ctx, toMinorUnits(amount), uc.Currency, owner.ID)
	if err != nil {
		return nil, err
	}

	return &paymentdto.GatewayOrderOutput{
		GatewayOrderID: order.OrderID,
		GatewayKeyID:   order.KeyID,
		AmountMinor:    order.AmountMinor,
		Currency:       order.Currency,
		Receipt:        order.Receipt,
	}, nil
}

// resolveOwnerAmount loads the owning record, enforces that the caller
// owns it, and returns the amount due.
func (uc *DefaultPaymentUsecase) resolveOwnerAmount(ctx context.Context, owner domain.PaymentOwner, callerID string) (float64, error) {
	switch owner.Kind {
	case domain.OwnerAdRequest:
		request, err := uc.Requests.GetByID(ctx, owner.ID)
		if err != nil {
			return 0, err
		}
		if callerID != "" && request.SellerID != callerID {
			return 0, &domain.AuthorizationError{Message: "ad request belongs to another seller"}
		}
		amount := request.AdPrice
		if amount == 0 {
			amount = request.RequestedPrice
		}
		return amount, nil

	case domain.OwnerCommerceOrder:
		order, err := uc.Orders.GetByID(ctx, owner.ID)
		if err != nil {
			return 0, err
		}
		if callerID != "" && order.CustomerID != callerID {
			return 0, &domain.AuthorizationError{Message: "order belongs to another customer"}
		}
		return order.Total, nil
	}

	return 0, &domain.ValidationError{Message: "unknown payment owner kind"}
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
