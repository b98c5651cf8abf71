package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolocal/shopads-service/internal/domain"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func submission(sellerID string) *adrequestdto.SubmitAdRequestInput {
	return &adrequestdto.SubmitAdRequestInput{
		SellerID:       sellerID,
		ShopName:       "Candle Corner",
		Tagline:        "Hand-poured soy candles",
		ImageURL:       "https://cdn.example.com/candles.jpg",
		StartDate:      day("2024-06-01"),
		DurationDays:   5,
		RequestedPrice: 500,
	}
}

func TestSubmitAppliesDefaultsAndStartsPending(t *testing.T) {
	f := newFixture(10)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PaymentUnpaid, created.PaymentStatus)
	assert.Equal(t, "FEATURED", created.Content.Badge)
	assert.Equal(t, "#FF4B6E", created.Content.BadgeColor)
	assert.Equal(t, "Visit Shop", created.Content.CTAText)
	assert.Equal(t, "Candle Corner", created.SellerName)
	assert.Equal(t, "candle@example.com", created.SellerEmail)
	assert.Equal(t, day("2024-06-01"), created.StartDate)
	assert.Equal(t, day("2024-06-06"), created.EndDate)

	stored, err := f.requests.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestSubmitEnforcesPricingLaw(t *testing.T) {
	f := newFixture(10)

	input := submission("seller-1")
	input.RequestedPrice = 450

	_, err := f.uc.Submit(context.Background(), input)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestSubmitWithProofStartsPaymentPending(t *testing.T) {
	f := newFixture(10)

	input := submission("seller-1")
	input.PaymentReference = "UPI-12345"

	created, err := f.uc.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPaymentPending, created.Status)
	assert.Equal(t, domain.PaymentUnpaid, created.PaymentStatus)
}

func TestSubmitRejectsWhenDayIsFull(t *testing.T) {
	f := newFixture(1)

	first := submission("seller-1")
	first.PaymentReference = "UPI-1"
	_, err := f.uc.Submit(context.Background(), first)
	require.NoError(t, err)

	// PaymentPending holds capacity, so an overlapping range is out.
	second := submission("seller-2")
	second.StartDate = day("2024-06-03")
	_, err = f.uc.Submit(context.Background(), second)

	var full *domain.CapacityExceededError
	require.ErrorAs(t, err, &full)
	assert.Equal(t, day("2024-06-03"), full.Day)

	// Pending requests hold nothing; a plain submission coexists.
	third := submission("seller-2")
	third.StartDate = day("2024-06-03")
	third.PaymentReference = ""
	// first is PaymentPending; third would be Pending but the range is
	// still blocked by first's hold.
	_, err = f.uc.Submit(context.Background(), third)
	require.ErrorAs(t, err, &full)
}

func TestPendingRequestsHoldNoCapacity(t *testing.T) {
	f := newFixture(1)

	_, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	second := submission("seller-2")
	_, err = f.uc.Submit(context.Background(), second)
	require.NoError(t, err)
}

func TestApproveMovesToApprovedWithPrice(t *testing.T) {
	f := newFixture(10)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	approved, err := f.uc.Approve(context.Background(), &adrequestdto.ApproveAdRequestInput{
		RequestID: created.ID,
		AdPrice:   500,
		AdminNote: "ok for june",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, 500.0, approved.AdPrice)
	require.NotNil(t, approved.ApprovedAt)
}

func TestApproveRequiresPendingStatus(t *testing.T) {
	f := newFixture(10)

	input := submission("seller-1")
	input.PaymentReference = "UPI-1"
	created, err := f.uc.Submit(context.Background(), input)
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), &adrequestdto.ApproveAdRequestInput{
		RequestID: created.ID,
		AdPrice:   500,
	})

	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestRejectRequiresNoteAndValidSourceStatus(t *testing.T) {
	f := newFixture(10)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	_, err = f.uc.Reject(context.Background(), &adrequestdto.RejectAdRequestInput{RequestID: created.ID})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)

	rejected, err := f.uc.Reject(context.Background(), &adrequestdto.RejectAdRequestInput{
		RequestID: created.ID,
		AdminNote: "image quality too low",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedAt)

	// Rejecting again conflicts and leaves the record untouched.
	_, err = f.uc.Reject(context.Background(), &adrequestdto.RejectAdRequestInput{
		RequestID: created.ID,
		AdminNote: "again",
	})
	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)

	stored, err := f.requests.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "image quality too low", stored.AdminNote)
}

func TestSubmitPaymentProofOwnershipAndStatus(t *testing.T) {
	f := newFixture(10)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	proof := &adrequestdto.SubmitPaymentProofInput{
		RequestID:        created.ID,
		SellerID:         "seller-2",
		PaymentReference: "UPI-99",
	}
	_, err = f.uc.SubmitPaymentProof(context.Background(), proof)
	var authz *domain.AuthorizationError
	require.ErrorAs(t, err, &authz)

	// Proof before approval conflicts.
	proof.SellerID = "seller-1"
	_, err = f.uc.SubmitPaymentProof(context.Background(), proof)
	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)

	_, err = f.uc.Approve(context.Background(), &adrequestdto.ApproveAdRequestInput{RequestID: created.ID, AdPrice: 500})
	require.NoError(t, err)

	updated, err := f.uc.SubmitPaymentProof(context.Background(), proof)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaymentPending, updated.Status)
	assert.Equal(t, "UPI-99", updated.PaymentReference)
}

func TestVerifyPaymentMaterializesLiveAd(t *testing.T) {
	f := newFixture(10)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)
	_, err = f.uc.Approve(context.Background(), &adrequestdto.ApproveAdRequestInput{RequestID: created.ID, AdPrice: 500})
	require.NoError(t, err)
	_, err = f.uc.SubmitPaymentProof(context.Background(), &adrequestdto.SubmitPaymentProofInput{
		RequestID:        created.ID,
		SellerID:         "seller-1",
		PaymentReference: "UPI-99",
	})
	require.NoError(t, err)

	verified, ad, err := f.uc.VerifyPaymentAndActivate(context.Background(), &adrequestdto.VerifyPaymentInput{
		RequestID: created.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusLive, verified.Status)
	assert.Equal(t, domain.PaymentPaid, verified.PaymentStatus)
	require.NotNil(t, verified.PaidAt)
	assert.Equal(t, ad.ID, verified.ShopAdID)

	assert.True(t, ad.IsActive)
	assert.Equal(t, 0, ad.DisplayOrder)
	assert.Equal(t, created.Content.ShopName, ad.Content.ShopName)
	assert.Equal(t, "Candle Corner", ad.ContactName)
	assert.Equal(t, "Candle Corner (Seller)", ad.RequestedBy)
	assert.Equal(t, created.StartDate, ad.StartDate)
	assert.Equal(t, created.EndDate, ad.EndDate)

	stored, err := f.ads.GetByID(context.Background(), ad.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	// Cannot verify twice; the request is already Live.
	_, _, err = f.uc.VerifyPaymentAndActivate(context.Background(), &adrequestdto.VerifyPaymentInput{
		RequestID: created.ID,
	})
	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestConcurrentVerifyMaterializesExactlyOnce(t *testing.T) {
	locker := &mutexLocker{}
	f := newFixtureWithLocker(10, locker)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)
	_, err = f.uc.Approve(context.Background(), &adrequestdto.ApproveAdRequestInput{RequestID: created.ID, AdPrice: 500})
	require.NoError(t, err)
	_, err = f.uc.SubmitPaymentProof(context.Background(), &adrequestdto.SubmitPaymentProofInput{
		RequestID:        created.ID,
		SellerID:         "seller-1",
		PaymentReference: "UPI-99",
	})
	require.NoError(t, err)

	// Hold the day lock so both callers read PaymentPending before
	// either enters the serialized section.
	locker.entered = make(chan struct{})
	locker.mu.Lock()

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _, err := f.uc.VerifyPaymentAndActivate(context.Background(), &adrequestdto.VerifyPaymentInput{
				RequestID: created.ID,
			})
			results <- err
		}()
	}
	<-locker.entered
	<-locker.entered
	locker.mu.Unlock()

	var successes, conflicts int
	for i := 0; i < 2; i++ {
		err := <-results
		if err == nil {
			successes++
			continue
		}
		var conflict *domain.StateConflictError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	active, err := f.ads.CountActive(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	stored, err := f.requests.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLive, stored.Status)
}

func TestConcurrentApproveAppliesOnce(t *testing.T) {
	locker := &mutexLocker{}
	f := newFixtureWithLocker(10, locker)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	// Both callers read Pending before either holds the lock.
	locker.entered = make(chan struct{})
	locker.mu.Lock()

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := f.uc.Approve(context.Background(), &adrequestdto.ApproveAdRequestInput{
				RequestID: created.ID,
				AdPrice:   500,
			})
			results <- err
		}()
	}
	<-locker.entered
	<-locker.entered
	locker.mu.Unlock()

	var successes, conflicts int
	for i := 0; i < 2; i++ {
		err := <-results
		if err == nil {
			successes++
			continue
		}
		var conflict *domain.StateConflictError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	stored, err := f.requests.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)
}

func TestDisplayOrderAppendsAtEnd(t *testing.T) {
	f := newFixture(10)

	var ads []*domain.ShopAd
	for _, sellerID := range []string{"seller-1", "seller-2"} {
		input := submission(sellerID)
		input.PaymentReference = "UPI-" + sellerID
		created, err := f.uc.Submit(context.Background(), input)
		require.NoError(t, err)

		_, ad, err := f.uc.VerifyPaymentAndActivate(context.Background(), &adrequestdto.VerifyPaymentInput{
			RequestID: created.ID,
		})
		require.NoError(t, err)
		ads = append(ads, ad)
	}

	assert.Equal(t, 0, ads[0].DisplayOrder)
	assert.Equal(t, 1, ads[1].DisplayOrder)
}

func TestCancelOnlyPendingOrRejected(t *testing.T) {
	f := newFixture(10)

	created, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	err = f.uc.Cancel(context.Background(), "seller-2", created.ID)
	var authz *domain.AuthorizationError
	require.ErrorAs(t, err, &authz)

	require.NoError(t, f.uc.Cancel(context.Background(), "seller-1", created.ID))

	_, err = f.requests.GetByID(context.Background(), created.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// An approved request cannot be cancelled.
	second, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)
	_, err = f.uc.Approve(context.Background(), &adrequestdto.ApproveAdRequestInput{RequestID: second.ID, AdPrice: 500})
	require.NoError(t, err)

	err = f.uc.Cancel(context.Background(), "seller-1", second.ID)
	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestLiveAdFreesRequestHoldButCountsAsAd(t *testing.T) {
	f := newFixture(1)

	input := submission("seller-1")
	input.PaymentReference = "UPI-1"
	created, err := f.uc.Submit(context.Background(), input)
	require.NoError(t, err)
	_, _, err = f.uc.VerifyPaymentAndActivate(context.Background(), &adrequestdto.VerifyPaymentInput{
		RequestID: created.ID,
	})
	require.NoError(t, err)

	// The live ad still consumes the slot.
	overlapping := submission("seller-2")
	_, err = f.uc.Submit(context.Background(), overlapping)
	var full *domain.CapacityExceededError
	require.ErrorAs(t, err, &full)

	// Past the ad's end date the slot is free again.
	after := submission("seller-2")
	after.StartDate = day("2024-06-06")
	_, err = f.uc.Submit(context.Background(), after)
	require.NoError(t, err)
}

func TestSweepExpiredMarksRequestsAndDeactivatesAds(t *testing.T) {
	f := newFixture(10)

	// Plant a live request whose range is already over.
	past := &domain.AdRequest{
		ID:        "req-past",
		SellerID:  "seller-1",
		Status:    domain.StatusLive,
		StartDate: day("2020-01-01"),
		EndDate:   day("2020-01-06"),
		ShopAdID:  "ad-past",
	}
	require.NoError(t, f.requests.Create(context.Background(), past))
	require.NoError(t, f.ads.create(&domain.ShopAd{
		ID:        "ad-past",
		IsActive:  true,
		StartDate: past.StartDate,
		EndDate:   past.EndDate,
	}))

	swept, err := f.uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	stored, err := f.requests.GetByID(context.Background(), "req-past")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, stored.Status)

	ad, err := f.ads.GetByID(context.Background(), "ad-past")
	require.NoError(t, err)
	assert.False(t, ad.IsActive)
}

func TestStatsCountsAgainstCap(t *testing.T) {
	f := newFixture(10)

	_, err := f.uc.Submit(context.Background(), submission("seller-1"))
	require.NoError(t, err)

	withProof := submission("seller-2")
	withProof.PaymentReference = "UPI-2"
	created, err := f.uc.Submit(context.Background(), withProof)
	require.NoError(t, err)
	_, _, err = f.uc.VerifyPaymentAndActivate(context.Background(), &adrequestdto.VerifyPaymentInput{
		RequestID: created.ID,
	})
	require.NoError(t, err)

	stats, err := f.uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Live)
	assert.Equal(t, int64(1), stats.ActiveAds)
	assert.Equal(t, 10, stats.MaxAds)
}
