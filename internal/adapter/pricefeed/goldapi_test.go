package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gold-ledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeed(url string) *GoldAPI {
	return NewGoldAPI(config.PriceFeedConfig{
		BaseURL:  url,
		APIKey:   "goldapi-test-key",
		Metal:    "XAU",
		Currency: "INR",
		Timeout:  2 * time.Second,
	})
}

func TestGoldAPI_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/XAU/INR", r.URL.Path)
		assert.Equal(t, "goldapi-test-key", r.Header.Get("x-access-token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"timestamp":1700000000,"metal":"XAU","currency":"INR","price":190000.5,"price_gram_24k":6108.6512}`))
	}))
	defer srv.Close()

	quote, err := newFeed(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), quote.Timestamp)
	assert.Equal(t, "6108.6512", quote.PricePerGram.String())
}

func TestGoldAPI_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer srv.Close()

	_, err := newFeed(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestGoldAPI_EmptyPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"timestamp":1700000000,"metal":"XAU","currency":"INR"}`))
	}))
	defer srv.Close()

	_, err := newFeed(srv.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrEmptyQuote)
}

func TestGoldAPI_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newFeed(srv.URL).Fetch(ctx)
	assert.Error(t, err)
}
