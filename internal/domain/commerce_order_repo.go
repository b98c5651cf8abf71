package domain

import "context"

type CommerceOrderRepository interface {
	GetByID(ctx context.Context, id string) (*CommerceOrder, error)

	// UpdatePayment patches the order's payment bookkeeping fields.
	// Empty status arguments leave the corresponding field untouched.
	UpdatePayment(ctx context.Context, id, paymentStatus, paymentID, status string) error
}
