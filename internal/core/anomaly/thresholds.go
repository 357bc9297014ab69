package anomaly

import "github.com/shopspring/decimal"

// Thresholds holds the amount limits the detector rules compare against.
// Comparisons are strict (>) except RoundNumberFloor, which is inclusive.
type Thresholds struct {
	LargeCash         decimal.Decimal
	CashCeiling       decimal.Decimal // Section 269ST limit; larger cash payments are high severity
	RoundNumberFloor  decimal.Decimal
	MissingInvoice    decimal.Decimal
	OneTimeVendor     decimal.Decimal
	MissingGSTIN      decimal.Decimal
	MinSequenceLength int
}

// DefaultThresholds returns the statutory and review limits used in production.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LargeCash:         decimal.NewFromInt(10000),
		CashCeiling:       decimal.NewFromInt(200000),
		RoundNumberFloor:  decimal.NewFromInt(50000),
		MissingInvoice:    decimal.NewFromInt(50000),
		OneTimeVendor:     decimal.NewFromInt(50000),
		MissingGSTIN:      decimal.NewFromInt(250000),
		MinSequenceLength: 3,
	}
}

// roundNumberModuli are the divisors that make an amount suspiciously round.
var roundNumberModuli = []decimal.Decimal{
	decimal.NewFromInt(100000),
	decimal.NewFromInt(50000),
}
