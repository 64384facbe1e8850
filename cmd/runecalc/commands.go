package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/napolitain/runecalc/internal/advisor"
	"github.com/napolitain/runecalc/internal/models"
	"github.com/napolitain/runecalc/internal/production"
	"github.com/napolitain/runecalc/internal/report"
)

var validate = validator.New()

type estimateOptions struct {
	Levels  []int   `validate:"dive,gte=0"`
	Runes   float64 `validate:"gte=0"`
	Elapsed production.Elapsed
	Details bool
}

func newEstimateCmd(a *app) *cobra.Command {
	var opts estimateOptions

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run one calculation from flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			levels, err := a.levels(opts.Levels)
			if err != nil {
				return err
			}

			calc := production.NewCalculator(a.roster, a.logger)
			result, err := calc.Calculate(production.Request{
				Levels:         levels,
				Collected:      opts.Runes,
				ElapsedSeconds: opts.Elapsed.Seconds(),
				Verbose:        opts.Details,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.Details(out, result)
			report.Summary(out, result, opts.Runes, opts.Elapsed)
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&opts.Levels, "levels", "l", nil, "Building levels in catalog order, missing ones are 0")
	cmd.Flags().Float64VarP(&opts.Runes, "runes", "r", 0, "Collected runes")
	cmd.Flags().IntVar(&opts.Elapsed.Days, "days", 0, "Days to project")
	cmd.Flags().IntVar(&opts.Elapsed.Hours, "hours", 0, "Hours to project (0-23)")
	cmd.Flags().IntVar(&opts.Elapsed.Minutes, "minutes", 0, "Minutes to project (0-59)")
	cmd.Flags().BoolVar(&opts.Details, "details", false, "Show production per building")
	return cmd
}

type pricesOptions struct {
	From  int `validate:"gte=0"`
	Count int `validate:"gte=1,lte=1000"`
}

func newPricesCmd(a *app) *cobra.Command {
	var opts pricesOptions

	cmd := &cobra.Command{
		Use:   "prices <building>",
		Short: "Show upgrade prices for every bulk tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			building, ok := a.roster.ByName(args[0])
			if !ok {
				return fmt.Errorf("unknown building %q (known: %s)", args[0], strings.Join(a.names(), ", "))
			}
			return report.Prices(cmd.OutOrStdout(), building, opts.From, opts.Count)
		},
	}

	cmd.Flags().IntVar(&opts.From, "from", 0, "First level")
	cmd.Flags().IntVar(&opts.Count, "count", 20, "Number of levels")
	return cmd
}

type adviseOptions struct {
	Levels []int   `validate:"dive,gte=0"`
	Runes  float64 `validate:"gte=0"`
	Top    int     `validate:"gte=0"`
	Tiers  []int   `validate:"dive,oneof=1 10 25 100"`
}

func newAdviseCmd(a *app) *cobra.Command {
	var opts adviseOptions

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Rank the next upgrades by return on investment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			levels, err := a.levels(opts.Levels)
			if err != nil {
				return err
			}

			tiers := make([]models.Tier, len(opts.Tiers))
			for i, t := range opts.Tiers {
				tiers[i] = models.Tier(t)
			}

			options, err := advisor.Rank(a.roster, levels, production.RunMultiplier(opts.Runes), tiers)
			if err != nil {
				return err
			}
			report.Options(cmd.OutOrStdout(), options, opts.Top)
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&opts.Levels, "levels", "l", nil, "Building levels in catalog order, missing ones are 0")
	cmd.Flags().Float64VarP(&opts.Runes, "runes", "r", 0, "Collected runes")
	cmd.Flags().IntVar(&opts.Top, "top", 10, "Number of options to show, 0 for all")
	cmd.Flags().IntSliceVar(&opts.Tiers, "tiers", nil, "Bulk tiers to consider (1, 10, 25, 100), default all")
	return cmd
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the buildings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			report.Catalog(cmd.OutOrStdout(), a.roster)
		},
	}
}

// levels pads raw with zeros up to the roster size
func (a *app) levels(raw []int) ([]int, error) {
	if len(raw) > a.roster.Len() {
		return nil, fmt.Errorf("got %d levels for %d buildings", len(raw), a.roster.Len())
	}
	levels := make([]int, a.roster.Len())
	copy(levels, raw)
	return levels, nil
}

func (a *app) names() []string {
	names := make([]string, 0, a.roster.Len())
	for _, b := range a.roster.Buildings() {
		names = append(names, b.Name())
	}
	return names
}
