package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/napolitain/runecalc/internal/config"
	"github.com/napolitain/runecalc/internal/logging"
	"github.com/napolitain/runecalc/internal/models"
)

// app carries the state shared by every command once setup has run
type app struct {
	maxLevel int
	logLevel string
	quiet    bool

	logger *zap.Logger
	roster *models.Roster
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "runecalc",
		Short: "Rune production calculator",
		Long: `Estimates currency and rune production from building levels,
and shows upgrade prices and the most profitable next purchases.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runInteractive,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().IntVar(&a.maxLevel, "max-level", 0, "Price table ceiling (levels 0..max-1)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(
		newEstimateCmd(a),
		newPricesCmd(a),
		newAdviseCmd(a),
		newCatalogCmd(a),
	)
	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the roster
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-level") {
		cfg.MaxLevel = a.maxLevel
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger, err = logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	a.roster, err = models.NewDefaultRoster(cfg.MaxLevel, a.logger)
	if err != nil {
		return err
	}
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
