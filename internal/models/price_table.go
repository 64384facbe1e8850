package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// PriceGrowth is the per-level price multiplier (3% per upgrade)
	PriceGrowth = 1.03

	// PricePrecision is the number of significant digits kept by the
	// single-tier accumulator between multiplications
	PricePrecision = 40

	// DefaultMaxLevel is the default price table ceiling (levels 0..25000)
	DefaultMaxLevel = 25001
)

var priceGrowth = decimal.RequireFromString("1.03")

// PriceTable holds exact upgrade prices per bulk tier, indexed by starting
// level. It is immutable once built.
type PriceTable struct {
	maxLevel int
	columns  [4][]decimal.Decimal
}

// BuildPriceTable precomputes prices for levels 0..maxLevel-1.
//
// The single tier is ceil(baseCost * 1.03^k). The unrounded value is carried
// in a decimal accumulator rounded to PricePrecision significant digits, and
// the ceiling is only applied to the stored entry, so rounding never
// compounds across levels. Bulk tiers are sliding window sums over the
// single tier.
func BuildPriceTable(baseCost int64, maxLevel int) (*PriceTable, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxLevel, maxLevel)
	}
	if baseCost <= 0 {
		return nil, fmt.Errorf("%w: base cost %d", ErrInvalidSpec, baseCost)
	}

	t := &PriceTable{maxLevel: maxLevel}

	single := make([]decimal.Decimal, maxLevel)
	acc := decimal.NewFromInt(baseCost)
	single[0] = acc
	for k := 1; k < maxLevel; k++ {
		acc = roundSignificant(acc.Mul(priceGrowth), PricePrecision)
		single[k] = acc.Ceil()
	}
	t.columns[0] = single

	for _, tier := range Tiers()[1:] {
		idx, _ := tier.Index()
		t.columns[idx] = windowSums(single, int(tier))
	}

	return t, nil
}

// windowSums returns the sums of every complete window of n consecutive
// entries. Decimal addition is exact, so the running sum matches the naive
// per-window sum.
func windowSums(values []decimal.Decimal, n int) []decimal.Decimal {
	if n > len(values) {
		return nil
	}
	out := make([]decimal.Decimal, len(values)-n+1)

	sum := decimal.Zero
	for i := 0; i < n; i++ {
		sum = sum.Add(values[i])
	}
	out[0] = sum
	for k := 1; k < len(out); k++ {
		sum = sum.Add(values[k+n-1]).Sub(values[k-1])
		out[k] = sum
	}
	return out
}

// roundSignificant rounds d to the given number of significant digits
func roundSignificant(d decimal.Decimal, digits int) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	intDigits := d.NumDigits() + int(d.Exponent())
	return d.Round(int32(digits - intDigits))
}

// MaxLevel returns the table ceiling (exclusive)
func (t *PriceTable) MaxLevel() int {
	return t.maxLevel
}

// Len returns the number of cached starting levels for a tier
func (t *PriceTable) Len(tier Tier) int {
	idx, ok := tier.Index()
	if !ok {
		return 0
	}
	return len(t.columns[idx])
}

// Lookup returns the cached price of a tier at a starting level
func (t *PriceTable) Lookup(level int, tier Tier) (decimal.Decimal, bool) {
	idx, ok := tier.Index()
	if !ok || level < 0 || level >= len(t.columns[idx]) {
		return decimal.Decimal{}, false
	}
	return t.columns[idx][level], true
}
