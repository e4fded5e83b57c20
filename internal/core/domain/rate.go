package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSample is one observed gold price per gram. Samples are append-only
// and strictly ordered by Timestamp (unix seconds).
type RateSample struct {
	Timestamp    int64           `json:"timestamp"`
	PricePerGram decimal.Decimal `json:"price_per_gram"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Time returns the sample time.
func (r RateSample) Time() time.Time {
	return time.Unix(r.Timestamp, 0)
}

// RateHistory is a slice of samples sorted by Timestamp ascending.
type RateHistory []RateSample

// At returns the latest sample not after ts. When every sample is newer it
// falls back to the earliest one and reports fallback=true. ok is false only
// for an empty history.
func (h RateHistory) At(ts int64) (sample RateSample, fallback bool, ok bool) {
	if len(h) == 0 {
		return RateSample{}, false, false
	}
	found := false
	for _, s := range h {
		if s.Timestamp > ts {
			break
		}
		sample = s
		found = true
	}
	if !found {
		return h[0], true, true
	}
	return sample, false, true
}
