// Package report renders calculation results for the console.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// groupedLimit is the largest amount printed in full; bigger amounts use
// scientific notation
var groupedLimit = decimal.New(1, 15)

// Money formats v with thousands separators and two decimals
func Money(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Whole formats v with thousands separators and no decimals
func Whole(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// Rate6 formats a small per-second rate with six decimals
func Rate6(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// Amount formats an exact price. Prices can exceed float64 range, so large
// values are printed as mantissa and exponent computed on the decimal.
func Amount(d decimal.Decimal) string {
	if d.Abs().LessThan(groupedLimit) {
		return printer.Sprintf("%d", d.Ceil().IntPart())
	}

	exp := d.NumDigits() + int(d.Exponent()) - 1
	mantissa := d.Shift(int32(-exp)).Round(3)
	if mantissa.Abs().GreaterThanOrEqual(decimal.NewFromInt(10)) {
		mantissa = mantissa.Shift(-1).Round(3)
		exp++
	}
	return fmt.Sprintf("%se+%d", mantissa.StringFixed(3), exp)
}

// Duration formats a payback time as days, hours and minutes
func Duration(d time.Duration) string {
	if d <= 0 {
		return "never"
	}
	days := int64(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)

	switch {
	case days > 0:
		return printer.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
