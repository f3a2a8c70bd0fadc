// Package payment verifies in-app purchase receipts with the payment
// provider and resolves them to a subscription plan.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/budgetcopain/backend/internal/models"
)

var (
	ErrBaseURLNotSet = errors.New("the payment provider base URL must be configured")
	ErrAPIKeyNotSet  = errors.New("the payment provider API key must be configured")
	ErrReceiptEmpty  = errors.New("the purchase receipt must not be empty")

	// ErrReceiptInvalid is returned when the provider rejects a receipt.
	ErrReceiptInvalid = errors.New("the purchase receipt was rejected by the payment provider")
)

// Config holds the payment provider settings.
type Config struct {
	BaseURL string
	APIKey  string
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLNotSet
	}
	if c.APIKey == "" {
		return ErrAPIKeyNotSet
	}
	return nil
}

// Purchase is a verified purchase.
type Purchase struct {
	Plan          models.SubscriptionPlan `json:"plan"`
	TransactionID string                  `json:"transactionId"`
}

// Service verifies purchase receipts.
type Service interface {
	ConfirmPurchase(ctx context.Context, receipt string) (Purchase, error)
}

// Client implements Service against the real provider.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// ConfirmPurchase sends a receipt to the provider and returns the plan
// it grants.
func (c *Client) ConfirmPurchase(ctx context.Context, receipt string) (Purchase, error) {
	if receipt == "" {
		return Purchase{}, ErrReceiptEmpty
	}

	body, err := json.Marshal(map[string]string{"receipt": receipt})
	if err != nil {
		return Purchase{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.config.BaseURL, "/")+"/v1/purchases/confirm", bytes.NewReader(body))
	if err != nil {
		return Purchase{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Purchase{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest {
		return Purchase{}, ErrReceiptInvalid
	}

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Purchase{}, fmt.Errorf("could not confirm purchase: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var purchase Purchase
	err = json.NewDecoder(resp.Body).Decode(&purchase)
	if err != nil {
		return Purchase{}, fmt.Errorf("could not parse purchase confirmation: %w", err)
	}

	if !purchase.Plan.Valid() {
		return Purchase{}, models.ErrSubscriptionPlan
	}

	return purchase, nil
}
