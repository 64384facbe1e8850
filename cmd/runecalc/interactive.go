package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/napolitain/runecalc/internal/production"
	"github.com/napolitain/runecalc/internal/prompt"
	"github.com/napolitain/runecalc/internal/report"
)

// runInteractive repeats prompt, calculate and report until the user stops,
// the input ends or an interrupt arrives
func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	done := make(chan error, 1)
	go func() {
		done <- a.loop(prompt.New(cmd.InOrStdin(), out), out)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		fmt.Fprintln(out, "\nInterrupted by user.")
		return nil
	}
}

func (a *app) loop(p *prompt.Prompter, out io.Writer) error {
	calc := production.NewCalculator(a.roster, a.logger)

	for {
		if !a.quiet {
			report.Banner(out, "Rune production calculator", fmt.Sprintf("levels 0..%d", a.roster.MaxLevel()-1))
		}

		input, err := p.Session(a.roster)
		if errors.Is(err, prompt.ErrInputClosed) {
			return nil
		}
		if err != nil {
			a.reportFailure(out, err)
			continue
		}

		result, err := calc.Calculate(input.Request)
		if err != nil {
			a.reportFailure(out, err)
			continue
		}

		report.Details(out, result)
		report.Summary(out, result, input.Request.Collected, input.Elapsed)

		again, err := p.Again("\nRepeat the calculation? (Y/N): ")
		if errors.Is(err, prompt.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// reportFailure prints a failed pass; the loop goes on with a new session
func (a *app) reportFailure(out io.Writer, err error) {
	a.logger.Warn("calculation pass failed", zap.Error(err))
	color.New(color.FgRed).Fprintf(out, "\nAn error occurred: %v\n", err)
	fmt.Fprintln(out, "Try again.")
}
