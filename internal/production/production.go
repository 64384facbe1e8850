// Package production aggregates building production into rune yield.
package production

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/napolitain/runecalc/internal/models"
)

const (
	// RunCost is the average currency cost of one rune
	RunCost = 9750000

	// RunesPerMultiplier is how many collected runes raise the run
	// multiplier by one
	RunesPerMultiplier = 20
)

// ErrInvalidRequest is returned when a calculation request fails validation
var ErrInvalidRequest = errors.New("invalid calculation request")

// Request is one calculation over the whole roster
type Request struct {
	Levels         []int   // one level per roster building, in roster order
	Collected      float64 // collected runes, drives the run multiplier
	ElapsedSeconds int64
	Verbose        bool
}

// BuildingRate is the production of one building in a calculation
type BuildingRate struct {
	Name        string
	Level       int
	BaseRate    float64 // currency per second without the run multiplier
	BoostedRate float64
}

// Result is the outcome of a calculation
type Result struct {
	RunMultiplier   int
	BonusPercentage int
	TotalProduction float64 // currency per second, multiplier applied
	RuneRate        float64 // runes per second
	RuneYield       float64 // runes over the elapsed time
	ElapsedSeconds  int64

	// Buildings is only filled for verbose requests
	Buildings []BuildingRate
}

// RunMultiplier returns floor(collected / 20), never below 1
func RunMultiplier(collected float64) int {
	m := int(math.Floor(collected / RunesPerMultiplier))
	if m < 1 {
		return 1
	}
	return m
}

// Calculator computes production over a fixed roster. It keeps no state
// between calls.
type Calculator struct {
	roster *models.Roster
	logger *zap.Logger
}

// NewCalculator creates a calculator for roster
func NewCalculator(roster *models.Roster, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{roster: roster, logger: logger}
}

// Roster returns the roster the calculator runs over
func (c *Calculator) Roster() *models.Roster {
	return c.roster
}

// Calculate runs one calculation. Either every building is rated or an
// error is returned; there is no partial result.
func (c *Calculator) Calculate(req Request) (*Result, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}

	multiplier := RunMultiplier(req.Collected)
	result := &Result{
		RunMultiplier:   multiplier,
		BonusPercentage: multiplier * 100,
		ElapsedSeconds:  req.ElapsedSeconds,
	}
	if req.Verbose {
		result.Buildings = make([]BuildingRate, 0, c.roster.Len())
	}

	for i, building := range c.roster.Buildings() {
		level := req.Levels[i]
		base, err := building.ProductionRate(level, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to rate %s at level %d: %w", building.Name(), level, err)
		}
		boosted := base * float64(multiplier)
		result.TotalProduction += boosted

		if req.Verbose {
			result.Buildings = append(result.Buildings, BuildingRate{
				Name:        building.Name(),
				Level:       level,
				BaseRate:    base,
				BoostedRate: boosted,
			})
		}
	}

	result.RuneRate = result.TotalProduction / RunCost
	result.RuneYield = result.RuneRate * float64(req.ElapsedSeconds)

	c.logger.Debug("calculation done",
		zap.Int("run_multiplier", multiplier),
		zap.Float64("total_production", result.TotalProduction),
		zap.Float64("rune_rate", result.RuneRate),
		zap.Int64("elapsed_seconds", req.ElapsedSeconds),
	)

	return result, nil
}

func (c *Calculator) validate(req Request) error {
	if len(req.Levels) != c.roster.Len() {
		return fmt.Errorf("%w: got %d levels for %d buildings", ErrInvalidRequest, len(req.Levels), c.roster.Len())
	}
	for i, level := range req.Levels {
		if level < 0 {
			return fmt.Errorf("%w: %s level %d is negative", ErrInvalidRequest, c.roster.At(i).Name(), level)
		}
	}
	if math.IsNaN(req.Collected) || math.IsInf(req.Collected, 0) || req.Collected < 0 {
		return fmt.Errorf("%w: collected runes must be a non-negative number", ErrInvalidRequest)
	}
	if req.ElapsedSeconds < 0 {
		return fmt.Errorf("%w: elapsed time is negative", ErrInvalidRequest)
	}
	return nil
}
