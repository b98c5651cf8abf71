package domain

import (
	"context"
	"time"
)

type ShopAdRepository interface {
	GetByID(ctx context.Context, id string) (*ShopAd, error)
	Update(ctx context.Context, ad *ShopAd) error

	CountActive(ctx context.Context) (int64, error)

	// ListActiveOverlapping returns the intervals of active ads
	// overlapping [from, to).
	ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]Interval, error)

	// DeactivateExpired flips isActive off for active ads whose range
	// has passed and returns how many were touched.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
