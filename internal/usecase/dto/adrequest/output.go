package adrequestdto

// RequestStats aggregates lifecycle counts against the configured cap.
type RequestStats struct {
	Pending        int64
	Approved       int64
	PaymentPending int64
	Live           int64
	Rejected       int64
	ActiveAds      int64
	MaxAds         int
}
