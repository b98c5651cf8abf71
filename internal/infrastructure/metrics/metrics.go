package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AdMetrics holds the prometheus instruments for the booking and
// settlement flows.
type AdMetrics struct {
	RequestsSubmittedTotal prometheus.CounterVec
	RequestsApprovedTotal  prometheus.Counter
	RequestsRejectedTotal  prometheus.Counter
	RequestsCancelledTotal prometheus.Counter
	AdsActivatedTotal      prometheus.Counter
	AdsExpiredTotal        prometheus.Counter

	CapacityRejectedTotal prometheus.Counter
	ActiveAdsGauge        prometheus.Gauge

	PaymentsCapturedTotal       prometheus.CounterVec
	PaymentsCapturedAmountTotal prometheus.CounterVec
	PaymentVerificationFailures prometheus.Counter
	RefundsTotal                prometheus.Counter
	WebhookEventsTotal          prometheus.CounterVec

	CaptureDuration prometheus.Histogram
}

func NewAdMetrics() *AdMetrics {
	return &AdMetrics{
		RequestsSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ad_requests_submitted_total",
				Help: "Ad requests submitted by sellers, by initial status",
			},
			[]string{"status"},
		),

		RequestsApprovedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ad_requests_approved_total",
				Help: "Ad requests approved by an admin",
			},
		),

		RequestsRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ad_requests_rejected_total",
				Help: "Ad requests rejected by an admin",
			},
		),

		RequestsCancelledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ad_requests_cancelled_total",
				Help: "Ad requests cancelled and deleted by their seller",
			},
		),

		AdsActivatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shop_ads_activated_total",
				Help: "Requests materialized into live carousel ads",
			},
		),

		AdsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shop_ads_expired_total",
				Help: "Live ads expired by the sweep",
			},
		),

		CapacityRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ad_capacity_rejections_total",
				Help: "Operations rejected because a day in range was at the cap",
			},
		),

		ActiveAdsGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "shop_ads_active",
				Help: "Currently active carousel ads",
			},
		),

		PaymentsCapturedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_captured_total",
				Help: "Captured payments by owner kind",
			},
			[]string{"owner_kind"},
		),

		PaymentsCapturedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_captured_amount_total",
				Help: "Captured payment amounts by owner kind and currency",
			},
			[]string{"owner_kind", "currency"},
		),

		PaymentVerificationFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_verification_failures_total",
				Help: "Capture attempts rejected on signature verification",
			},
		),

		RefundsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_refunds_total",
				Help: "Refunds processed through the gateway",
			},
		),

		WebhookEventsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_webhook_events_total",
				Help: "Gateway webhook events by type and outcome",
			},
			[]string{"event", "result"},
		),

		CaptureDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "payment_capture_duration_seconds",
				Help:    "Wall time of the capture settlement transaction",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}
