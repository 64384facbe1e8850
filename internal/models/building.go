package models

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"
)

const (
	// CycleSpeedup is the cycle duration factor applied per breakpoint
	CycleSpeedup = 0.8

	// ProductionBoost is the per-cycle production factor applied per breakpoint
	ProductionBoost = 2.0

	overflowMemoSize = 1024
)

// Building is one upgradeable production entity with its precomputed tables.
// Tables are built once by NewBuilding and only read afterwards, so a
// Building is safe for concurrent use.
type Building struct {
	spec        BuildingSpec
	prices      *PriceTable
	breakpoints []uint8                // dense index for levels below the ceiling
	overflow    *lru.Cache[int, uint8] // memo for levels beyond the ceiling
}

// NewBuilding builds the price table and breakpoint index for levels
// 0..maxLevel-1
func NewBuilding(spec BuildingSpec, maxLevel int) (*Building, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	prices, err := BuildPriceTable(spec.BaseCost, maxLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}

	dense := make([]uint8, maxLevel)
	for level := range dense {
		dense[level] = uint8(BreakpointIndex(level))
	}

	overflow, err := lru.New[int, uint8](overflowMemoSize)
	if err != nil {
		return nil, fmt.Errorf("%s: breakpoint memo: %w", spec.Name, err)
	}

	return &Building{
		spec:        spec,
		prices:      prices,
		breakpoints: dense,
		overflow:    overflow,
	}, nil
}

func (b *Building) ID() int            { return b.spec.ID }
func (b *Building) Name() string       { return b.spec.Name }
func (b *Building) Spec() BuildingSpec { return b.spec }

// Prices exposes the read-only price table
func (b *Building) Prices() *PriceTable { return b.prices }

// PriceAt returns the cost of bulk consecutive upgrades starting at level.
// Supported tiers inside the table are exact; everything else uses the
// closed-form geometric sum, which may differ slightly from the table.
func (b *Building) PriceAt(level, bulk int) (decimal.Decimal, error) {
	if level < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrNegativeLevel, level)
	}
	if bulk < 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrInvalidBulk, bulk)
	}
	if price, ok := b.prices.Lookup(level, Tier(bulk)); ok {
		return price, nil
	}
	return b.estimatePrice(level, bulk)
}

// estimatePrice is ceil(baseCost * 1.03^level * (1 - 1.03^bulk) / -0.03)
func (b *Building) estimatePrice(level, bulk int) (decimal.Decimal, error) {
	price := math.Ceil(float64(b.spec.BaseCost) *
		math.Pow(PriceGrowth, float64(level)) *
		(1 - math.Pow(PriceGrowth, float64(bulk))) / -0.03)
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s level %d x%d", ErrPriceOverflow, b.spec.Name, level, bulk)
	}
	return decimal.NewFromFloat(price), nil
}

// PriceRange returns the cost of count consecutive single upgrades from level
func (b *Building) PriceRange(level, count int) (decimal.Decimal, error) {
	if level < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrNegativeLevel, level)
	}
	if count < 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrInvalidBulk, count)
	}
	if level+count > b.prices.Len(TierSingle) {
		return b.estimatePrice(level, count)
	}

	total := decimal.Zero
	remaining := count
	at := level
	// largest tiers first to keep the number of additions small
	tiers := Tiers()
	for i := len(tiers) - 1; i >= 0 && remaining > 0; i-- {
		size := int(tiers[i])
		for remaining >= size {
			price, ok := b.prices.Lookup(at, tiers[i])
			if !ok {
				break
			}
			total = total.Add(price)
			at += size
			remaining -= size
		}
	}
	return total, nil
}

// BreakpointFor returns the breakpoint index of level
func (b *Building) BreakpointFor(level int) int {
	if level < 0 {
		return 0
	}
	if level < len(b.breakpoints) {
		return int(b.breakpoints[level])
	}
	if idx, ok := b.overflow.Get(level); ok {
		return int(idx)
	}
	idx := BreakpointIndex(level)
	b.overflow.Add(level, uint8(idx))
	return idx
}

// CycleDuration returns the seconds per production cycle at level
func (b *Building) CycleDuration(level int) float64 {
	return b.spec.BaseCycleDuration * math.Pow(CycleSpeedup, float64(b.BreakpointFor(level)))
}

// CycleProduction returns the currency produced per cycle at level,
// rounded half to even
func (b *Building) CycleProduction(level int) float64 {
	return math.RoundToEven(b.spec.BaseIncrement * float64(level) *
		math.Pow(ProductionBoost, float64(b.BreakpointFor(level))))
}

// ProductionRate returns currency per second at level, scaled by multiplier
func (b *Building) ProductionRate(level int, multiplier float64) (float64, error) {
	duration := b.CycleDuration(level)
	if duration == 0 {
		return 0, fmt.Errorf("%w: %s", ErrZeroCycleDuration, b.spec.Name)
	}
	return b.CycleProduction(level) / duration * multiplier, nil
}
