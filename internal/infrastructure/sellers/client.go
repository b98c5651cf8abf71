package sellers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hellolocal/shopads-service/internal/domain"
)

// Client resolves seller identity snapshots from the seller-directory
// service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(host, port string) *Client {
	return &Client{
		baseURL:    fmt.Sprintf("http://%s:%s", host, port),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type sellerEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ID       string `json:"id"`
		ShopName string `json:"shopName"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	} `json:"data"`
	Message string `json:"message"`
}

func (c *Client) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	url := fmt.Sprintf("%s/api/v1/sellers/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seller directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &domain.NotFoundError{Entity: "seller", ID: id}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("seller directory returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope sellerEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("seller directory rejected lookup: %s", envelope.Message)
	}

	name := envelope.Data.ShopName
	if name == "" {
		name = envelope.Data.Name
	}

	return &domain.Seller{
		ID:    envelope.Data.ID,
		Name:  name,
		Email: envelope.Data.Email,
		Phone: envelope.Data.Phone,
	}, nil
}
