package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MoneyPlaces is the number of decimals kept for cash amounts.
	MoneyPlaces int32 = 2
	// GramPlaces is the number of decimals kept for gold grams.
	GramPlaces int32 = 4
)

var (
	// GramEpsilon is the tolerance used when comparing gram quantities.
	GramEpsilon = decimal.New(1, -GramPlaces)

	hundred = decimal.NewFromInt(100)
)

// ReportZone is the fixed civil-date zone (UTC+05:30) used for report boundaries.
var ReportZone = time.FixedZone("IST", 5*60*60+30*60)

// RoundMoney rounds a cash amount half-up to two decimals.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// TruncGrams truncates a gram quantity toward zero at four decimals.
func TruncGrams(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(GramPlaces)
}

// Percent returns pct percent of amount, rounded as money.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(pct).Div(hundred))
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
