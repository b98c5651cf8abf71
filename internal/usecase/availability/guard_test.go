package availability_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/usecase/availability"
)

type fakeIntervalSource struct {
	intervals []domain.Interval
}

func (f *fakeIntervalSource) overlapping(from, to time.Time) []domain.Interval {
	var out []domain.Interval
	for _, iv := range f.intervals {
		if iv.Overlaps(from, to) {
			out = append(out, iv)
		}
	}
	return out
}

type fakeRequestSource struct {
	fakeIntervalSource
}

func (f *fakeRequestSource) ListHoldingCapacity(_ context.Context, from, to time.Time) ([]domain.Interval, error) {
	return f.overlapping(from, to), nil
}

func (f *fakeRequestSource) Create(context.Context, *domain.AdRequest) error { return nil }
func (f *fakeRequestSource) GetByID(context.Context, string) (*domain.AdRequest, error) {
	return nil, nil
}
func (f *fakeRequestSource) Update(context.Context, *domain.AdRequest) error { return nil }
func (f *fakeRequestSource) Delete(context.Context, string) error            { return nil }
func (f *fakeRequestSource) ListBySeller(context.Context, string) ([]*domain.AdRequest, error) {
	return nil, nil
}
func (f *fakeRequestSource) List(context.Context, domain.AdRequestFilter) ([]*domain.AdRequest, int64, error) {
	return nil, 0, nil
}
func (f *fakeRequestSource) CountByStatus(context.Context) (map[domain.AdRequestStatus]int64, error) {
	return nil, nil
}
func (f *fakeRequestSource) ActivateWithShopAd(context.Context, *domain.AdRequest, *domain.ShopAd) error {
	return nil
}
func (f *fakeRequestSource) FindLiveExpired(context.Context, time.Time) ([]*domain.AdRequest, error) {
	return nil, nil
}

type fakeAdSource struct {
	fakeIntervalSource
}

func (f *fakeAdSource) ListActiveOverlapping(_ context.Context, from, to time.Time) ([]domain.Interval, error) {
	return f.overlapping(from, to), nil
}

func (f *fakeAdSource) GetByID(context.Context, string) (*domain.ShopAd, error) { return nil, nil }
func (f *fakeAdSource) Update(context.Context, *domain.ShopAd) error            { return nil }
func (f *fakeAdSource) CountActive(context.Context) (int64, error)              { return 0, nil }
func (f *fakeAdSource) DeactivateExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type recordingLocker struct {
	mu       sync.Mutex
	lockSets [][]time.Time
	unlocked int
}

func (l *recordingLocker) LockDays(_ context.Context, days []time.Time) (domain.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lockSets = append(l.lockSets, days)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.unlocked++
	}, nil
}

func newGuard(cap int, requests *fakeRequestSource, ads *fakeAdSource, locker *recordingLocker) *availability.Guard {
	return availability.NewGuard(availability.NewCalculator(cap), requests, ads, locker)
}

func TestReserveMergesBothCountingSources(t *testing.T) {
	requests := &fakeRequestSource{}
	requests.intervals = []domain.Interval{interval("req", "2024-06-01", "2024-06-04")}
	ads := &fakeAdSource{}
	ads.intervals = []domain.Interval{interval("ad", "2024-06-02", "2024-06-05")}
	guard := newGuard(2, requests, ads, &recordingLocker{})

	// Both sources overlap on the 2nd and 3rd, hitting the cap of 2.
	err := guard.Reserve(context.Background(), day("2024-06-01"), 4, "")

	var full *domain.CapacityExceededError
	require.ErrorAs(t, err, &full)
	assert.Equal(t, day("2024-06-02"), full.Day)
	assert.Equal(t, 2, full.Booked)
	assert.Equal(t, 2, full.Cap)
}

func TestReserveNamesFirstFullDay(t *testing.T) {
	requests := &fakeRequestSource{}
	requests.intervals = []domain.Interval{
		interval("a", "2024-06-03", "2024-06-04"),
		interval("b", "2024-06-05", "2024-06-06"),
	}
	guard := newGuard(1, requests, &fakeAdSource{}, &recordingLocker{})

	err := guard.Reserve(context.Background(), day("2024-06-01"), 7, "")

	var full *domain.CapacityExceededError
	require.ErrorAs(t, err, &full)
	assert.Equal(t, day("2024-06-03"), full.Day)
}

func TestReserveAllowsSelfExclusion(t *testing.T) {
	requests := &fakeRequestSource{}
	requests.intervals = []domain.Interval{interval("self", "2024-06-01", "2024-06-08")}
	guard := newGuard(1, requests, &fakeAdSource{}, &recordingLocker{})

	require.NoError(t, guard.Reserve(context.Background(), day("2024-06-01"), 7, "self"))

	err := guard.Reserve(context.Background(), day("2024-06-01"), 7, "other")
	var full *domain.CapacityExceededError
	require.ErrorAs(t, err, &full)
}

func TestWithRangeLockLocksEveryDayAndReleases(t *testing.T) {
	locker := &recordingLocker{}
	guard := newGuard(1, &fakeRequestSource{}, &fakeAdSource{}, locker)

	called := false
	err := guard.WithRangeLock(context.Background(), day("2024-06-01"), 3, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)

	assert.True(t, called)
	require.Len(t, locker.lockSets, 1)
	assert.Equal(t, []time.Time{day("2024-06-01"), day("2024-06-02"), day("2024-06-03")}, locker.lockSets[0])
	assert.Equal(t, 1, locker.unlocked)
}

func TestWithRangeLockReleasesOnError(t *testing.T) {
	locker := &recordingLocker{}
	guard := newGuard(1, &fakeRequestSource{}, &fakeAdSource{}, locker)

	err := guard.WithRangeLock(context.Background(), day("2024-06-01"), 2, func() error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, locker.unlocked)
}
