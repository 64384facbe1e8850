package production

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/runecalc/internal/models"
)

func newSeatCalculator(t *testing.T) *Calculator {
	t.Helper()
	roster, err := models.NewRoster([]models.BuildingSpec{
		{ID: 0, Name: "Seat", BaseCycleDuration: 72, BaseIncrement: 1, BaseCost: 5},
	}, 100, nil)
	require.NoError(t, err)
	return NewCalculator(roster, nil)
}

func newDefaultCalculator(t *testing.T) *Calculator {
	t.Helper()
	roster, err := models.NewDefaultRoster(200, nil)
	require.NoError(t, err)
	return NewCalculator(roster, nil)
}

func TestRunMultiplier(t *testing.T) {
	tests := []struct {
		collected float64
		want      int
	}{
		{0, 1},
		{19.99, 1},
		{20, 1},
		{39.9, 1},
		{40, 2},
		{45, 2},
		{59.999, 2},
		{60, 3},
		{2000, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RunMultiplier(tt.collected), "collected=%v", tt.collected)
	}
}

func TestRunMultiplierBands(t *testing.T) {
	for k := 1; k < 50; k++ {
		low := float64(20 * k)
		assert.Equal(t, k, RunMultiplier(low))
		assert.Equal(t, k, RunMultiplier(low+19.5))
	}
}

func TestCalculateSingleBuilding(t *testing.T) {
	calc := newSeatCalculator(t)

	result, err := calc.Calculate(Request{Levels: []int{0}, Collected: 0, ElapsedSeconds: 3600})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TotalProduction)
	assert.Equal(t, 0.0, result.RuneYield)

	result, err = calc.Calculate(Request{Levels: []int{25}, Collected: 45, ElapsedSeconds: 86400, Verbose: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RunMultiplier)
	assert.Equal(t, 200, result.BonusPercentage)
	require.Len(t, result.Buildings, 1)
	assert.InDelta(t, 50/57.6, result.Buildings[0].BaseRate, 1e-9)
	assert.InDelta(t, 2*50/57.6, result.Buildings[0].BoostedRate, 1e-9)
	assert.InDelta(t, 2*50/57.6, result.TotalProduction, 1e-9)
	assert.InDelta(t, result.TotalProduction/RunCost, result.RuneRate, 1e-18)
	assert.InDelta(t, result.RuneRate*86400, result.RuneYield, 1e-12)
}

func TestRuneYieldExample(t *testing.T) {
	// 10 currency/s over one day
	rate := 10.0 / RunCost
	assert.InDelta(t, 1.0256e-6, rate, 1e-10)
	assert.InDelta(t, 0.0886, rate*86400, 1e-4)
}

func TestCalculateVerbosityDoesNotChangeTotals(t *testing.T) {
	calc := newDefaultCalculator(t)
	levels := []int{150, 120, 99, 75, 50, 26, 25, 10, 1, 0}

	quiet, err := calc.Calculate(Request{Levels: levels, Collected: 137, ElapsedSeconds: 90061})
	require.NoError(t, err)
	verbose, err := calc.Calculate(Request{Levels: levels, Collected: 137, ElapsedSeconds: 90061, Verbose: true})
	require.NoError(t, err)

	assert.Nil(t, quiet.Buildings)
	require.Len(t, verbose.Buildings, 10)
	assert.Equal(t, quiet.TotalProduction, verbose.TotalProduction)
	assert.Equal(t, quiet.RuneRate, verbose.RuneRate)
	assert.Equal(t, quiet.RuneYield, verbose.RuneYield)

	var sum float64
	for i, b := range verbose.Buildings {
		assert.Equal(t, calc.Roster().At(i).Name(), b.Name)
		assert.Equal(t, levels[i], b.Level)
		assert.Equal(t, b.BaseRate*float64(verbose.RunMultiplier), b.BoostedRate)
		sum += b.BoostedRate
	}
	assert.Equal(t, verbose.TotalProduction, sum)
}

func TestCalculateIsIdempotent(t *testing.T) {
	calc := newDefaultCalculator(t)
	req := Request{Levels: []int{199, 180, 150, 120, 100, 60, 30, 12, 5, 3}, Collected: 999.5, ElapsedSeconds: 7 * 86400, Verbose: true}

	first, err := calc.Calculate(req)
	require.NoError(t, err)
	second, err := calc.Calculate(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, math.Float64bits(first.RuneYield), math.Float64bits(second.RuneYield))
}

func TestCalculateLevelsBeyondCeiling(t *testing.T) {
	calc := newDefaultCalculator(t)
	levels := []int{12000, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	result, err := calc.Calculate(Request{Levels: levels, ElapsedSeconds: 60})
	require.NoError(t, err)

	// 12000 * 2^9 per 72 * 0.8^9 seconds
	want := 12000 * 512 / (72 * math.Pow(0.8, 9))
	assert.InDelta(t, want, result.TotalProduction, 1e-6)
}

func TestCalculateRejectsInvalidRequests(t *testing.T) {
	calc := newSeatCalculator(t)

	tests := []struct {
		name string
		req  Request
	}{
		{"wrong level count", Request{Levels: []int{1, 2}}},
		{"no levels", Request{}},
		{"negative level", Request{Levels: []int{-1}}},
		{"negative runes", Request{Levels: []int{1}, Collected: -1}},
		{"NaN runes", Request{Levels: []int{1}, Collected: math.NaN()}},
		{"infinite runes", Request{Levels: []int{1}, Collected: math.Inf(1)}},
		{"negative elapsed", Request{Levels: []int{1}, ElapsedSeconds: -60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Nil(t, result)
		})
	}
}

func TestCalculateFailsWithoutPartialResult(t *testing.T) {
	roster, err := models.NewRoster([]models.BuildingSpec{
		{ID: 0, Name: "Seat", BaseCycleDuration: 72, BaseIncrement: 1, BaseCost: 5},
		{ID: 1, Name: "Stalled", BaseCycleDuration: 0, BaseIncrement: 1, BaseCost: 5},
	}, 50, nil)
	require.NoError(t, err)
	calc := NewCalculator(roster, nil)

	result, err := calc.Calculate(Request{Levels: []int{10, 10}})
	assert.ErrorIs(t, err, models.ErrZeroCycleDuration)
	assert.ErrorContains(t, err, "Stalled")
	assert.Nil(t, result)
}
