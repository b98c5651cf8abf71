package domain

import (
	"context"
	"time"
)

type AdRequestFilter struct {
	Status AdRequestStatus
	Page   int
	Limit  int
}

type AdRequestRepository interface {
	Create(ctx context.Context, req *AdRequest) error
	GetByID(ctx context.Context, id string) (*AdRequest, error)
	Update(ctx context.Context, req *AdRequest) error
	Delete(ctx context.Context, id string) error

	ListBySeller(ctx context.Context, sellerID string) ([]*AdRequest, error)
	List(ctx context.Context, filter AdRequestFilter) ([]*AdRequest, int64, error)
	CountByStatus(ctx context.Context) (map[AdRequestStatus]int64, error)

	// ListHoldingCapacity returns the intervals of requests in the
	// capacity set overlapping [from, to).
	ListHoldingCapacity(ctx context.Context, from, to time.Time) ([]Interval, error)

	// ActivateWithShopAd persists the Live transition and its
	// materialized ShopAd in one transaction.
	ActivateWithShopAd(ctx context.Context, req *AdRequest, ad *ShopAd) error

	FindLiveExpired(ctx context.Context, now time.Time) ([]*AdRequest, error)
}
