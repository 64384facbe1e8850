// Package advisor ranks building upgrades by return on investment.
package advisor

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/napolitain/runecalc/internal/models"
)

var ErrNoOption = errors.New("no upgrade option available")

// Option is one candidate purchase
type Option struct {
	Building   string
	BuildingID int
	Tier       models.Tier
	FromLevel  int
	ToLevel    int
	Cost       decimal.Decimal
	Gain       float64       // extra currency per second, run multiplier applied
	ROI        float64       // gain per second per unit of currency spent
	Payback    time.Duration // 0 when the upgrade never pays back
}

// ROIMetric represents the components of an ROI calculation
type ROIMetric struct {
	GainPerSecond float64
	TotalCost     decimal.Decimal
}

// Calculate computes the ROI value. Costs too large for a float64 yield 0.
func (m ROIMetric) Calculate() float64 {
	if m.GainPerSecond <= 0 {
		return 0
	}
	cost := m.TotalCost.InexactFloat64()
	if cost <= 0 || math.IsInf(cost, 0) {
		return 0
	}
	return m.GainPerSecond / cost
}

// Payback returns how long the gain takes to cover the cost
func (m ROIMetric) Payback() time.Duration {
	if m.GainPerSecond <= 0 {
		return 0
	}
	seconds := m.TotalCost.InexactFloat64() / m.GainPerSecond
	if math.IsInf(seconds, 0) || seconds > float64(math.MaxInt64)/float64(time.Second) {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// Rank evaluates every building and tier from the current levels and returns
// the options sorted by ROI, best first. Ties are broken by building id,
// then by tier size.
func Rank(roster *models.Roster, levels []int, multiplier int, tiers []models.Tier) ([]Option, error) {
	if len(levels) != roster.Len() {
		return nil, fmt.Errorf("got %d levels for %d buildings", len(levels), roster.Len())
	}
	if multiplier < 1 {
		multiplier = 1
	}
	if len(tiers) == 0 {
		tiers = models.Tiers()
	}

	var options []Option
	for i, building := range roster.Buildings() {
		from := levels[i]
		current, err := building.ProductionRate(from, float64(multiplier))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", building.Name(), err)
		}

		for _, tier := range tiers {
			to := from + int(tier)
			cost, err := building.PriceAt(from, int(tier))
			if errors.Is(err, models.ErrPriceOverflow) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("%s: %w", building.Name(), err)
			}
			next, err := building.ProductionRate(to, float64(multiplier))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", building.Name(), err)
			}

			metric := ROIMetric{GainPerSecond: next - current, TotalCost: cost}
			options = append(options, Option{
				Building:   building.Name(),
				BuildingID: building.ID(),
				Tier:       tier,
				FromLevel:  from,
				ToLevel:    to,
				Cost:       cost,
				Gain:       metric.GainPerSecond,
				ROI:        metric.Calculate(),
				Payback:    metric.Payback(),
			})
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].ROI != options[j].ROI {
			return options[i].ROI > options[j].ROI
		}
		if options[i].BuildingID != options[j].BuildingID {
			return options[i].BuildingID < options[j].BuildingID
		}
		return options[i].Tier < options[j].Tier
	})

	return options, nil
}

// Best returns the highest ROI option
func Best(roster *models.Roster, levels []int, multiplier int, tiers []models.Tier) (Option, error) {
	options, err := Rank(roster, levels, multiplier, tiers)
	if err != nil {
		return Option{}, err
	}
	if len(options) == 0 || options[0].ROI <= 0 {
		return Option{}, ErrNoOption
	}
	return options[0], nil
}
