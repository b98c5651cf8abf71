package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
	gonanoid "github.com/jaevor/go-nanoid"
)

const defaultBaseURL = "https://api.razorpay.com"

// Client talks to the Razorpay Orders and Refunds APIs with basic auth.
// Without credentials it degrades to locally generated mock orders so
// development environments work without a gateway account.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	production bool
	httpClient *http.Client
	mockID     func() string
}

func NewClient(keyID, keySecret string, production bool) *Client {
	mockID, err := gonanoid.CustomASCII("0123456789abcdefghijklmnopqrstuvwxyz", 14)
	if err != nil {
		panic(err)
	}

	return &Client{
		baseURL:    defaultBaseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		production: production,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		mockID:     mockID,
	}
}

func (c *Client) configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*domain.GatewayOrder, error) {
	if !c.configured() {
		if c.production {
			return nil, fmt.Errorf("payment gateway credentials are not configured")
		}
		return &domain.GatewayOrder{
			OrderID:     "order_mock_" + c.mockID(),
			KeyID:       "rzp_test_mock",
			AmountMinor: amountMinor,
			Currency:    currency,
			Receipt:     receipt,
		}, nil
	}

	payload := map[string]any{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	var resp orderResponse
	if err := c.post(ctx, "/v1/orders", payload, &resp); err != nil {
		return nil, err
	}

	return &domain.GatewayOrder{
		OrderID:     resp.ID,
		KeyID:       c.keyID,
		AmountMinor: resp.Amount,
		Currency:    resp.Currency,
		Receipt:     resp.Receipt,
	}, nil
}

type refundResponse struct {
	ID string `json:"id"`
}

func (c *Client) Refund(ctx context.Context, gatewayPaymentID string, amountMinor int64, reason string) (string, error) {
	if !c.configured() {
		if c.production {
			return "", fmt.Errorf("payment gateway credentials are not configured")
		}
		return "rfnd_mock_" + c.mockID(), nil
	}

	payload := map[string]any{
		"amount": amountMinor,
		"notes":  map[string]string{"reason": reason},
	}

	var resp refundResponse
	path := fmt.Sprintf("/v1/payments/%s/refund", gatewayPaymentID)
	if err := c.post(ctx, path, payload, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return json.Unmarshal(respBody, out)
}
