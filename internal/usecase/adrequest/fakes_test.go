package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/metrics"
	usecase "github.com/hellolocal/shopads-service/internal/usecase/adrequest"
	"github.com/hellolocal/shopads-service/internal/usecase/availability"
)

// promauto registers on the default registry, so the package shares one
// instance across tests.
var testMetrics = metrics.NewAdMetrics()

type memRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*domain.AdRequest
	ads      *memShopAdRepo
}

func newMemRequestRepo(ads *memShopAdRepo) *memRequestRepo {
	return &memRequestRepo{requests: make(map[string]*domain.AdRequest), ads: ads}
}

func copyRequest(r *domain.AdRequest) *domain.AdRequest {
	c := *r
	return &c
}

func (m *memRequestRepo) Create(_ context.Context, req *domain.AdRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = copyRequest(req)
	return nil
}

func (m *memRequestRepo) GetByID(_ context.Context, id string) (*domain.AdRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "ad request", ID: id}
	}
	return copyRequest(req), nil
}

func (m *memRequestRepo) Update(_ context.Context, req *domain.AdRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.requests[req.ID]; !ok {
		return &domain.NotFoundError{Entity: "ad request", ID: req.ID}
	}
	m.requests[req.ID] = copyRequest(req)
	return nil
}

func (m *memRequestRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.requests[id]; !ok {
		return &domain.NotFoundError{Entity: "ad request", ID: id}
	}
	delete(m.requests, id)
	return nil
}

func (m *memRequestRepo) ListBySeller(_ context.Context, sellerID string) ([]*domain.AdRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.AdRequest
	for _, req := range m.requests {
		if req.SellerID == sellerID {
			out = append(out, copyRequest(req))
		}
	}
	return out, nil
}

func (m *memRequestRepo) List(_ context.Context, filter domain.AdRequestFilter) ([]*domain.AdRequest, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.AdRequest
	for _, req := range m.requests {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		out = append(out, copyRequest(req))
	}
	return out, int64(len(out)), nil
}

func (m *memRequestRepo) CountByStatus(_ context.Context) (map[domain.AdRequestStatus]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[domain.AdRequestStatus]int64)
	for _, req := range m.requests {
		counts[req.Status]++
	}
	return counts, nil
}

func (m *memRequestRepo) ListHoldingCapacity(_ context.Context, from, to time.Time) ([]domain.Interval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Interval
	for _, req := range m.requests {
		iv := domain.Interval{ID: req.ID, Start: req.StartDate, End: req.EndDate}
		if req.HoldsCapacity() && iv.Overlaps(from, to) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (m *memRequestRepo) ActivateWithShopAd(ctx context.Context, req *domain.AdRequest, ad *domain.ShopAd) error {
	m.mu.Lock()
	m.requests[req.ID] = copyRequest(req)
	m.mu.Unlock()
	return m.ads.create(ad)
}

func (m *memRequestRepo) FindLiveExpired(_ context.Context, now time.Time) ([]*domain.AdRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.AdRequest
	for _, req := range m.requests {
		if req.Status == domain.StatusLive && !now.Before(req.EndDate) {
			out = append(out, copyRequest(req))
		}
	}
	return out, nil
}

type memShopAdRepo struct {
	mu  sync.Mutex
	ads map[string]*domain.ShopAd
}

func newMemShopAdRepo() *memShopAdRepo {
	return &memShopAdRepo{ads: make(map[string]*domain.ShopAd)}
}

func copyAd(a *domain.ShopAd) *domain.ShopAd {
	c := *a
	return &c
}

func (m *memShopAdRepo) create(ad *domain.ShopAd) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ads[ad.ID] = copyAd(ad)
	return nil
}

func (m *memShopAdRepo) GetByID(_ context.Context, id string) (*domain.ShopAd, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ad, ok := m.ads[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "shop ad", ID: id}
	}
	return copyAd(ad), nil
}

func (m *memShopAdRepo) Update(_ context.Context, ad *domain.ShopAd) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ads[ad.ID]; !ok {
		return &domain.NotFoundError{Entity: "shop ad", ID: ad.ID}
	}
	m.ads[ad.ID] = copyAd(ad)
	return nil
}

func (m *memShopAdRepo) CountActive(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, ad := range m.ads {
		if ad.IsActive {
			count++
		}
	}
	return count, nil
}

func (m *memShopAdRepo) ListActiveOverlapping(_ context.Context, from, to time.Time) ([]domain.Interval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Interval
	for _, ad := range m.ads {
		iv := domain.Interval{ID: ad.ID, Start: ad.StartDate, End: ad.EndDate}
		if ad.IsActive && iv.Overlaps(from, to) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (m *memShopAdRepo) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var touched int64
	for _, ad := range m.ads {
		if ad.IsActive && !now.Before(ad.EndDate) {
			ad.IsActive = false
			touched++
		}
	}
	return touched, nil
}

type staticSellerDirectory struct {
	sellers map[string]*domain.Seller
}

func (d *staticSellerDirectory) GetSeller(_ context.Context, id string) (*domain.Seller, error) {
	seller, ok := d.sellers[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "seller", ID: id}
	}
	return seller, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return nil
}

type nopLocker struct{}

func (nopLocker) LockDays(context.Context, []time.Time) (domain.UnlockFunc, error) {
	return func() {}, nil
}

// mutexLocker serializes critical sections the way the redis guard
// does, so races between check and write become observable in tests.
// When entered is set, each caller signals on it before acquiring.
type mutexLocker struct {
	mu      sync.Mutex
	entered chan struct{}
}

func (l *mutexLocker) LockDays(context.Context, []time.Time) (domain.UnlockFunc, error) {
	if l.entered != nil {
		l.entered <- struct{}{}
	}
	l.mu.Lock()
	return l.mu.Unlock, nil
}

type fixture struct {
	uc       *usecase.DefaultAdRequestUsecase
	requests *memRequestRepo
	ads      *memShopAdRepo
	notifier *recordingNotifier
}

func newFixture(maxAds int) *fixture {
	return newFixtureWithLocker(maxAds, nopLocker{})
}

func newFixtureWithLocker(maxAds int, locker domain.DayLocker) *fixture {
	ads := newMemShopAdRepo()
	requests := newMemRequestRepo(ads)
	notifier := &recordingNotifier{}
	directory := &staticSellerDirectory{sellers: map[string]*domain.Seller{
		"seller-1": {ID: "seller-1", Name: "Candle Corner", Email: "candle@example.com", Phone: "+911234567890"},
		"seller-2": {ID: "seller-2", Name: "Mug Mart", Email: "mugs@example.com", Phone: "+919876543210"},
	}}

	guard := availability.NewGuard(availability.NewCalculator(maxAds), requests, ads, locker)

	return &fixture{
		uc: usecase.NewDefaultAdRequestUsecase(
			requests, ads, guard, directory, notifier, testMetrics, 100, maxAds,
		),
		requests: requests,
		ads:      ads,
		notifier: notifier,
	}
}
