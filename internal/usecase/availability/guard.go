package availability

import (
	"context"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
)

// Guard wraps the Calculator with the enforcement policy: gather the
// capacity set from both counting sources, reject over-committed
// ranges, and serialize check-then-write sequences through per-day
// advisory locks.
type Guard struct {
	calc     *Calculator
	requests domain.AdRequestRepository
	shopAds  domain.ShopAdRepository
	locker   domain.DayLocker
}

func NewGuard(
	calc *Calculator,
	requests domain.AdRequestRepository,
	shopAds domain.ShopAdRepository,
	locker domain.DayLocker,
) *Guard {
	return &Guard{
		calc:     calc,
		requests: requests,
		shopAds:  shopAds,
		locker:   locker,
	}
}

// Availability fetches the current capacity set for the range and runs
// the calculator over it. Safe for read-only statistics.
func (g *Guard) Availability(ctx context.Context, start time.Time, durationDays int, excludeID string) (*domain.RangeAvailability, error) {
	if durationDays < 1 {
		return nil, &domain.ValidationError{Message: "duration must be at least 1 day"}
	}

	from := DayStart(start)
	to := from.AddDate(0, 0, durationDays)

	reqIntervals, err := g.requests.ListHoldingCapacity(ctx, from, to)
	if err != nil {
		return nil, err
	}
	adIntervals, err := g.shopAds.ListActiveOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Interval, 0, len(reqIntervals)+len(adIntervals))
	records = append(records, reqIntervals...)
	records = append(records, adIntervals...)

	return g.calc.Check(from, durationDays, records, excludeID)
}

// Reserve rejects the range unless every day has a free slot. On
// failure the error names the first day, in range order, already at
// the cap.
func (g *Guard) Reserve(ctx context.Context, start time.Time, durationDays int, excludeID string) error {
	avail, err := g.Availability(ctx, start, durationDays, excludeID)
	if err != nil {
		return err
	}
	if avail.FullyAvailable {
		return nil
	}

	for _, day := range avail.PerDay {
		if day.Booked >= g.calc.Capacity() {
			return &domain.CapacityExceededError{
				Day:    day.Date,
				Booked: day.Booked,
				Cap:    g.calc.Capacity(),
			}
		}
	}

	// Unreachable unless FullyAvailable lied.
	return &domain.CapacityExceededError{Cap: g.calc.Capacity()}
}

// WithRangeLock holds the advisory locks for every day in the range
// across fn, so the availability read and the write it guards commit as
// one step against concurrent bookings of overlapping ranges.
func (g *Guard) WithRangeLock(ctx context.Context, start time.Time, durationDays int, fn func() error) error {
	if durationDays < 1 {
		return &domain.ValidationError{Message: "duration must be at least 1 day"}
	}

	unlock, err := g.locker.LockDays(ctx, RangeDays(start, durationDays))
	if err != nil {
		return err
	}
	defer unlock()

	return fn()
}
