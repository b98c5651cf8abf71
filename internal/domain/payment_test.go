package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolocal/shopads-service/internal/domain"
)

func TestNewPaymentOwner(t *testing.T) {
	owner, err := domain.NewPaymentOwner(domain.OwnerAdRequest, "req-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OwnerAdRequest, owner.Kind)
	assert.Equal(t, "req-1", owner.ID)

	_, err = domain.NewPaymentOwner("Invoice", "x")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = domain.NewPaymentOwner(domain.OwnerCommerceOrder, "")
	require.ErrorAs(t, err, &validation)
}

func TestHoldsCapacity(t *testing.T) {
	holding := []domain.AdRequestStatus{
		domain.StatusApproved,
		domain.StatusPaymentPending,
		domain.StatusPaymentVerified,
	}
	for _, status := range holding {
		req := &domain.AdRequest{Status: status}
		assert.True(t, req.HoldsCapacity(), string(status))
	}

	free := []domain.AdRequestStatus{
		domain.StatusPending,
		domain.StatusRejected,
		domain.StatusLive,
		domain.StatusExpired,
	}
	for _, status := range free {
		req := &domain.AdRequest{Status: status}
		assert.False(t, req.HoldsCapacity(), string(status))
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	running := &domain.AdRequest{
		Status:  domain.StatusLive,
		EndDate: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, domain.StatusLive, running.EffectiveStatus(now))

	past := &domain.AdRequest{
		Status:  domain.StatusLive,
		EndDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, domain.StatusExpired, past.EffectiveStatus(now))

	// Non-live statuses never derive to Expired.
	pending := &domain.AdRequest{
		Status:  domain.StatusPending,
		EndDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, domain.StatusPending, pending.EffectiveStatus(now))
}

func TestIntervalOverlapsHalfOpen(t *testing.T) {
	iv := domain.Interval{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, iv.Overlaps(
		time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	))
	// End day is exclusive.
	assert.False(t, iv.Overlaps(
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
	))
	// Start day is inclusive.
	assert.True(t, iv.Overlaps(
		time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	))
}
