package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/runecalc/internal/advisor"
	"github.com/napolitain/runecalc/internal/models"
	"github.com/napolitain/runecalc/internal/production"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgYellow)
)

// ErrLevelRange is returned when a requested level range does not fit in an int
var ErrLevelRange = errors.New("level range out of bounds")

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("14")).
	Padding(0, 2).
	Bold(true)

// Banner prints the framed program title
func Banner(w io.Writer, title, subtitle string) {
	text := title
	if subtitle != "" {
		text += "\n" + subtitle
	}
	fmt.Fprintln(w, bannerStyle.Render(text))
}

// Summary prints the aggregate result of a calculation
func Summary(w io.Writer, result *production.Result, collected float64, elapsed production.Elapsed) {
	fmt.Fprintln(w)
	titleColor.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Collected runes (multiplier): %s\n", Whole(collected))
	fmt.Fprintf(w, "Earnings bonus: +%s%% (multiplier: %dx)\n", Whole(float64(result.BonusPercentage)), result.RunMultiplier)
	fmt.Fprintf(w, "Total production: %s $/s\n", Money(result.TotalProduction))
	fmt.Fprintf(w, "Rune production: %s runes/s\n", Rate6(result.RuneRate))
	fmt.Fprintln(w)
	successColor.Fprintf(w, "After %s you will receive: %s runes\n", elapsed, Money(result.RuneYield))
}

// Details prints the per-building rates of a verbose calculation
func Details(w io.Writer, result *production.Result) {
	if len(result.Buildings) == 0 {
		return
	}

	fmt.Fprintln(w)
	titleColor.Fprintln(w, "Building production:")

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Building", "Level", "Base $/s", "Multiplier", "Boosted $/s"}),
	)
	for _, b := range result.Buildings {
		row := []string{
			b.Name,
			strconv.Itoa(b.Level),
			Money(b.BaseRate),
			fmt.Sprintf("%dx", result.RunMultiplier),
			Money(b.BoostedRate),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

// Prices prints count levels of a building's price table starting at from.
// Estimated prices are marked with a tilde.
func Prices(w io.Writer, building *models.Building, from, count int) error {
	if from < 0 {
		return fmt.Errorf("%w: %d", models.ErrNegativeLevel, from)
	}
	if count < 1 {
		return fmt.Errorf("%w: %d", models.ErrInvalidBulk, count)
	}
	if from > math.MaxInt-count {
		return fmt.Errorf("%w: %d levels from %d", ErrLevelRange, count, from)
	}

	tiers := models.Tiers()
	header := []string{"Level"}
	for _, tier := range tiers {
		header = append(header, tier.String())
	}

	titleColor.Fprintf(w, "%s prices (base cost %s)\n", building.Name(), Whole(float64(building.Spec().BaseCost)))

	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))
	for level := from; level < from+count; level++ {
		row := []string{strconv.Itoa(level)}
		for _, tier := range tiers {
			row = append(row, priceCell(building, level, tier))
		}
		_ = table.Append(row)
	}
	_ = table.Render()

	if from+count > building.Prices().MaxLevel() {
		infoColor.Fprintf(w, "~ estimated beyond the table ceiling of %d levels\n", building.Prices().MaxLevel())
	}
	return nil
}

func priceCell(building *models.Building, level int, tier models.Tier) string {
	price, err := building.PriceAt(level, int(tier))
	if err != nil {
		return "overflow"
	}
	if _, cached := building.Prices().Lookup(level, tier); !cached {
		return "~" + Amount(price)
	}
	return Amount(price)
}

// Options prints a ranking of upgrade options, at most top rows when top > 0
func Options(w io.Writer, options []advisor.Option, top int) {
	if top > 0 && len(options) > top {
		options = options[:top]
	}

	titleColor.Fprintln(w, "Best upgrades:")
	if len(options) == 0 {
		infoColor.Fprintln(w, "No upgrade improves production.")
		return
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Building", "Upgrade", "Cost", "Gain $/s", "Payback"}),
	)
	for i, o := range options {
		row := []string{
			strconv.Itoa(i + 1),
			o.Building,
			fmt.Sprintf("%d → %d (%s)", o.FromLevel, o.ToLevel, o.Tier),
			Amount(o.Cost),
			Money(o.Gain),
			Duration(o.Payback),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

// Catalog prints the building definitions of a roster
func Catalog(w io.Writer, roster *models.Roster) {
	titleColor.Fprintln(w, "Buildings:")

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Base Cost", "Cycle (s)", "Increment"}),
	)
	for _, b := range roster.Buildings() {
		spec := b.Spec()
		row := []string{
			strconv.Itoa(spec.ID),
			spec.Name,
			Whole(float64(spec.BaseCost)),
			strconv.FormatFloat(spec.BaseCycleDuration, 'f', -1, 64),
			strconv.FormatFloat(spec.BaseIncrement, 'f', -1, 64),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}
