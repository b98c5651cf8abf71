package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/usecase/availability"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func interval(id, start, end string) domain.Interval {
	return domain.Interval{ID: id, Start: day(start), End: day(end)}
}

func TestDayStartNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2024, 6, 5, 23, 45, 0, 0, loc)

	got := availability.DayStart(ts)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 5, got.Day())
}

func TestRangeDays(t *testing.T) {
	days := availability.RangeDays(day("2024-06-01"), 3)

	require.Len(t, days, 3)
	assert.Equal(t, day("2024-06-01"), days[0])
	assert.Equal(t, day("2024-06-03"), days[2])
}

func TestCheckRejectsNonPositiveDuration(t *testing.T) {
	calc := availability.NewCalculator(10)

	_, err := calc.Check(day("2024-06-01"), 0, nil, "")

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCheckCountsPerDayOverlaps(t *testing.T) {
	calc := availability.NewCalculator(10)

	records := []domain.Interval{
		interval("a", "2024-06-01", "2024-06-05"),
		interval("b", "2024-06-03", "2024-06-10"),
		interval("c", "2024-06-04", "2024-06-06"),
	}

	result, err := calc.Check(day("2024-06-01"), 6, records, "")
	require.NoError(t, err)
	require.Len(t, result.PerDay, 6)

	booked := make([]int, 0, 6)
	for _, d := range result.PerDay {
		booked = append(booked, d.Booked)
	}
	assert.Equal(t, []int{1, 1, 2, 3, 2, 1}, booked)
	assert.Equal(t, 3, result.MaxBooked)
	assert.True(t, result.FullyAvailable)
}

func TestCheckHalfOpenBoundaries(t *testing.T) {
	calc := availability.NewCalculator(1)

	// Booking ends on the 5th, so the 5th itself is free.
	records := []domain.Interval{interval("a", "2024-06-01", "2024-06-05")}

	result, err := calc.Check(day("2024-06-05"), 1, records, "")
	require.NoError(t, err)

	assert.Equal(t, 0, result.PerDay[0].Booked)
	assert.True(t, result.FullyAvailable)
}

func TestCheckFullDayBlocksWholeRange(t *testing.T) {
	calc := availability.NewCalculator(10)

	// Ten bookings all covering 2024-06-05.
	records := make([]domain.Interval, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, domain.Interval{
			ID:    string(rune('a' + i)),
			Start: day("2024-06-05"),
			End:   day("2024-06-06"),
		})
	}

	// A range crossing the full day is not fully available.
	result, err := calc.Check(day("2024-06-01"), 10, records, "")
	require.NoError(t, err)
	assert.False(t, result.FullyAvailable)
	assert.Equal(t, 10, result.MaxBooked)

	// A range starting after the full day is unaffected.
	result, err = calc.Check(day("2024-06-11"), 5, records, "")
	require.NoError(t, err)
	assert.True(t, result.FullyAvailable)
	assert.Equal(t, 0, result.MaxBooked)
}

func TestCheckExcludesOwnInterval(t *testing.T) {
	calc := availability.NewCalculator(1)

	records := []domain.Interval{interval("self", "2024-06-01", "2024-06-08")}

	result, err := calc.Check(day("2024-06-01"), 7, records, "self")
	require.NoError(t, err)

	assert.True(t, result.FullyAvailable)
	assert.Equal(t, 0, result.MaxBooked)
}
