package domain

import "time"

// Interval is a booked date range as seen by the capacity engine,
// regardless of whether it comes from an AdRequest or a ShopAd.
type Interval struct {
	ID    string
	Start time.Time
	End   time.Time
}

// Overlaps applies the half-open interval intersection test against
// [from, to).
func (iv Interval) Overlaps(from, to time.Time) bool {
	return iv.Start.Before(to) && iv.End.After(from)
}

type DayAvailability struct {
	Date      time.Time
	Booked    int
	Available int
}

type RangeAvailability struct {
	PerDay         []DayAvailability
	MaxBooked      int
	FullyAvailable bool
}
