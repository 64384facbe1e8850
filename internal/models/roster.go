package models

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Roster is the ordered, immutable set of buildings a calculation runs over
type Roster struct {
	buildings []*Building
	maxLevel  int
}

// NewRoster builds every building's tables. Buildings share no mutable
// state, so their tables are built concurrently.
func NewRoster(specs []BuildingSpec, maxLevel int, logger *zap.Logger) (*Roster, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxLevel, maxLevel)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	buildings := make([]*Building, len(specs))

	var g errgroup.Group
	for i, spec := range specs {
		g.Go(func() error {
			t0 := time.Now()
			b, err := NewBuilding(spec, maxLevel)
			if err != nil {
				return err
			}
			buildings[i] = b
			logger.Debug("price table built",
				zap.String("building", spec.Name),
				zap.Int("max_level", maxLevel),
				zap.Duration("took", time.Since(t0)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}

	logger.Info("roster ready",
		zap.Int("buildings", len(buildings)),
		zap.Int("max_level", maxLevel),
		zap.Duration("took", time.Since(start)),
	)

	return &Roster{buildings: buildings, maxLevel: maxLevel}, nil
}

// NewDefaultRoster builds the roster from the embedded catalog
func NewDefaultRoster(maxLevel int, logger *zap.Logger) (*Roster, error) {
	specs, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewRoster(specs, maxLevel, logger)
}

// Len returns the number of buildings
func (r *Roster) Len() int {
	return len(r.buildings)
}

// MaxLevel returns the price table ceiling shared by all buildings
func (r *Roster) MaxLevel() int {
	return r.maxLevel
}

// At returns the building at roster index i
func (r *Roster) At(i int) *Building {
	return r.buildings[i]
}

// Buildings returns the buildings in roster order
func (r *Roster) Buildings() []*Building {
	out := make([]*Building, len(r.buildings))
	copy(out, r.buildings)
	return out
}

// ByName finds a building by name, ignoring case
func (r *Roster) ByName(name string) (*Building, bool) {
	for _, b := range r.buildings {
		if strings.EqualFold(b.Name(), name) {
			return b, true
		}
	}
	return nil, false
}
