package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the price and production model
var (
	ErrNegativeLevel     = errors.New("level must be non-negative")
	ErrInvalidBulk       = errors.New("bulk size must be at least 1")
	ErrPriceOverflow     = errors.New("price exceeds float64 range")
	ErrZeroCycleDuration = errors.New("cycle duration is zero")
	ErrInvalidMaxLevel   = errors.New("max level must be at least 1")
	ErrInvalidSpec       = errors.New("invalid building spec")
)

// Tier is a bulk purchase size with its own price table column
type Tier int

const (
	TierSingle  Tier = 1
	TierTen     Tier = 10
	TierQuarter Tier = 25
	TierHundred Tier = 100
)

// Tiers returns the supported bulk tiers in column order
func Tiers() []Tier {
	return []Tier{TierSingle, TierTen, TierQuarter, TierHundred}
}

// Index returns the price table column of a bulk size.
// ok is false for sizes without a precomputed column.
func (t Tier) Index() (idx int, ok bool) {
	switch t {
	case TierSingle:
		return 0, true
	case TierTen:
		return 1, true
	case TierQuarter:
		return 2, true
	case TierHundred:
		return 3, true
	}
	return -1, false
}

func (t Tier) String() string {
	return fmt.Sprintf("x%d", int(t))
}

// BuildingSpec holds the static parameters of one catalog building
type BuildingSpec struct {
	ID                int     `yaml:"id"`
	Name              string  `yaml:"name"`
	BaseCycleDuration float64 `yaml:"base_cycle_duration"` // seconds per cycle at level 1
	BaseIncrement     float64 `yaml:"base_increment"`      // production per level per cycle
	BaseCost          int64   `yaml:"base_cost"`           // price of the first upgrade
}

// Validate checks the numeric invariants of a spec
func (s BuildingSpec) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: building %d has no name", ErrInvalidSpec, s.ID)
	case s.ID < 0:
		return fmt.Errorf("%w: %s has negative id", ErrInvalidSpec, s.Name)
	case s.BaseCycleDuration < 0:
		return fmt.Errorf("%w: %s has negative cycle duration", ErrInvalidSpec, s.Name)
	case s.BaseIncrement < 0:
		return fmt.Errorf("%w: %s has negative increment", ErrInvalidSpec, s.Name)
	case s.BaseCost <= 0:
		return fmt.Errorf("%w: %s must have a positive base cost", ErrInvalidSpec, s.Name)
	}
	return nil
}
