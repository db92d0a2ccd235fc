// Package payment wraps the external payment-capture collaborator.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// CaptureDetails is the provider's confirmation of a captured payment,
// forwarded verbatim to the orders API.
type CaptureDetails struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	PayerEmail string `json:"payerEmail,omitempty"`
}

// Capturer is the capture collaborator contract consumed by the order
// lifecycle controller.
type Capturer interface {
	CreateIntent(ctx context.Context, totalCents int64) (string, error)
	Capture(ctx context.Context, intentID string) (CaptureDetails, error)
}

type api interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path string, body any, token string, out any) error
}

// Client drives intent creation and capture against the provider endpoints
// exposed by the storefront API. The provider key is fetched once per client
// and cached.
type Client struct {
	api   api
	token string

	mu        sync.Mutex
	clientKey string
}

func NewClient(api api, token string) *Client {
	return &Client{api: api, token: token}
}

func (c *Client) providerKey(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clientKey != "" {
		return c.clientKey, nil
	}
	var key string
	if err := c.api.Get(ctx, "/api/keys/paypal", c.token, &key); err != nil {
		return "", fmt.Errorf("fetch provider key: %w", err)
	}
	if key == "" {
		return "", errors.New("empty provider key")
	}
	c.clientKey = key
	return key, nil
}

type intentRequest struct {
	ClientKey   string `json:"clientKey"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
}

type intentResponse struct {
	ID string `json:"id"`
}

func (c *Client) CreateIntent(ctx context.Context, totalCents int64) (string, error) {
	key, err := c.providerKey(ctx)
	if err != nil {
		return "", err
	}
	var resp intentResponse
	err = c.api.Post(ctx, "/api/payments/intents", intentRequest{
		ClientKey:   key,
		AmountCents: totalCents,
		Currency:    "USD",
	}, c.token, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", errors.New("provider returned no intent id")
	}
	return resp.ID, nil
}

func (c *Client) Capture(ctx context.Context, intentID string) (CaptureDetails, error) {
	var details CaptureDetails
	err := c.api.Post(ctx, "/api/payments/intents/"+intentID+"/capture", nil, c.token, &details)
	if err != nil {
		return CaptureDetails{}, err
	}
	return details, nil
}
