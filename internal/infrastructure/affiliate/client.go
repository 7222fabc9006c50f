package affiliate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the external affiliate-identifier provisioning
// service. The core only consumes the returned identifier and link; it
// never mints identifiers itself.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a provisioning client with a bounded request timeout
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type provisionRequest struct {
	WalletAddress string `json:"walletAddress"`
}

type provisionResponse struct {
	AffiliateID  string `json:"affiliateId"`
	ReferralLink string `json:"referralLink"`
}

// Provision requests a globally unique affiliate id and shareable link
// for an activated wallet.
func (c *Client) Provision(ctx context.Context, wallet string) (affiliateID, referralLink string, err error) {
	body, err := json.Marshal(provisionRequest{WalletAddress: wallet})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/affiliates", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("affiliate service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("affiliate service returned status %d", resp.StatusCode)
	}

	var out provisionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", fmt.Errorf("affiliate service response decode failed: %w", err)
	}
	if out.AffiliateID == "" {
		return "", "", fmt.Errorf("affiliate service returned empty affiliate id")
	}

	return out.AffiliateID, out.ReferralLink, nil
}
