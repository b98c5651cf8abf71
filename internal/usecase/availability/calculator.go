package availability

import (
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
)

// DayStart normalizes a timestamp to its UTC midnight boundary.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RangeDays lists the day buckets of the half-open range starting at
// DayStart(start), durationDays long.
func RangeDays(start time.Time, durationDays int) []time.Time {
	days := make([]time.Time, 0, durationDays)
	d := DayStart(start)
	for i := 0; i < durationDays; i++ {
		days = append(days, d.AddDate(0, 0, i))
	}
	return days
}

// Calculator answers how many carousel slots are taken per day for a
// date range. It is pure over the intervals it is handed; callers fetch
// the capacity set and may reuse the same result as a read-only
// statistic or as a pre-write guard.
type Calculator struct {
	capacity int
}

func NewCalculator(maxActiveAds int) *Calculator {
	return &Calculator{capacity: maxActiveAds}
}

func (c *Calculator) Capacity() int { return c.capacity }

// Check computes per-day booked counts over durationDays consecutive
// day buckets. An interval matching excludeID is left out of its own
// count so update-in-place checks do not block themselves.
func (c *Calculator) Check(start time.Time, durationDays int, records []domain.Interval, excludeID string) (*domain.RangeAvailability, error) {
	if durationDays < 1 {
		return nil, &domain.ValidationError{Message: "duration must be at least 1 day"}
	}

	result := &domain.RangeAvailability{
		PerDay:         make([]domain.DayAvailability, 0, durationDays),
		FullyAvailable: true,
	}

	for _, dayStart := range RangeDays(start, durationDays) {
		dayEnd := dayStart.AddDate(0, 0, 1)

		booked := 0
		for _, rec := range records {
			if excludeID != "" && rec.ID == excludeID {
				continue
			}
			if rec.Overlaps(dayStart, dayEnd) {
				booked++
			}
		}

		available := c.capacity - booked
		if available < 0 {
			available = 0
		}
		result.PerDay = append(result.PerDay, domain.DayAvailability{
			Date:      dayStart,
			Booked:    booked,
			Available: available,
		})

		if booked > result.MaxBooked {
			result.MaxBooked = booked
		}
		if booked >= c.capacity {
			result.FullyAvailable = false
		}
	}

	return result, nil
}
