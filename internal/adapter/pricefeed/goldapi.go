// Package pricefeed fetches spot gold prices from goldapi.io.
package pricefeed

import (
	"context"
	"errors"
	"fmt"

	"gold-ledger/config"
	"gold-ledger/internal/core/ports"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// ErrEmptyQuote is returned when the feed answers without a usable price.
var ErrEmptyQuote = errors.New("price feed returned no gram price")

type goldAPIResponse struct {
	Timestamp    int64           `json:"timestamp"`
	Metal        string          `json:"metal"`
	Currency     string          `json:"currency"`
	PriceGram24k decimal.Decimal `json:"price_gram_24k"`
}

type goldAPIError struct {
	Error string `json:"error"`
}

// GoldAPI implements ports.PriceFeed against the goldapi.io REST API.
type GoldAPI struct {
	client   *resty.Client
	metal    string
	currency string
}

// NewGoldAPI creates a client from the price feed configuration.
func NewGoldAPI(cfg config.PriceFeedConfig) *GoldAPI {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("x-access-token", cfg.APIKey).
		SetHeader("Accept", "application/json")

	return &GoldAPI{client: client, metal: cfg.Metal, currency: cfg.Currency}
}

// Fetch returns the current 24k price per gram.
func (g *GoldAPI) Fetch(ctx context.Context) (*ports.PriceQuote, error) {
	var body goldAPIResponse
	var apiErr goldAPIError

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"metal": g.metal, "currency": g.currency}).
		SetResult(&body).
		SetError(&apiErr).
		Get("/api/{metal}/{currency}")
	if err != nil {
		return nil, fmt.Errorf("goldapi request: %w", err)
	}
	if resp.IsError() {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("goldapi status %d: %s", resp.StatusCode(), apiErr.Error)
		}
		return nil, fmt.Errorf("goldapi status %d", resp.StatusCode())
	}
	if !body.PriceGram24k.IsPositive() || body.Timestamp <= 0 {
		return nil, ErrEmptyQuote
	}

	return &ports.PriceQuote{
		Timestamp:    body.Timestamp,
		PricePerGram: body.PriceGram24k,
	}, nil
}
