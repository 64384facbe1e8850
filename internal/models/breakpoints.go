package models

import "math"

// Breakpoint is a level threshold: levels below Threshold (and at or above
// the previous threshold) use Index.
type Breakpoint struct {
	Threshold int
	Index     int
}

// breakpoints is shared by every building. The last threshold is unbounded.
var breakpoints = [...]Breakpoint{
	{25, 0},
	{50, 1},
	{100, 2},
	{250, 3},
	{500, 4},
	{1000, 5},
	{2500, 6},
	{5000, 7},
	{10000, 8},
	{math.MaxInt, 9},
}

// MaxBreakpoint is the highest breakpoint index
const MaxBreakpoint = 9

// Breakpoints returns a copy of the breakpoint table
func Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(breakpoints))
	copy(out, breakpoints[:])
	return out
}

// BreakpointIndex resolves the breakpoint index of a level: the index of the
// first threshold strictly greater than level.
func BreakpointIndex(level int) int {
	for _, bp := range breakpoints {
		if level < bp.Threshold {
			return bp.Index
		}
	}
	return MaxBreakpoint
}

// NextBreakpoint returns the first level at which the breakpoint index
// increases, or false when level is already in the last tier.
func NextBreakpoint(level int) (int, bool) {
	for _, bp := range breakpoints {
		if level < bp.Threshold {
			if bp.Threshold == math.MaxInt {
				return 0, false
			}
			return bp.Threshold, true
		}
	}
	return 0, false
}
