// Package prompt collects calculation input interactively, re-asking until
// every answer is valid.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/napolitain/runecalc/internal/models"
	"github.com/napolitain/runecalc/internal/production"
)

// ErrInputClosed is returned when the input ends or fails before an answer
// is given
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	validate *validator.Validate
}

// New creates a prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		validate: validator.New(),
	}
}

func (p *Prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// Number asks for a number in [lower, upper). A nil upper means no bound.
func (p *Prompter) Number(label string, lower float64, upper *float64) (float64, error) {
	rule := "gte=" + plain(lower)
	if upper != nil {
		rule += ",lt=" + plain(*upper)
	}

	for {
		answer, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(answer, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if err := p.validate.Var(value, rule); err != nil {
			if upper != nil {
				fmt.Fprintf(p.out, "Value must be between %s and %s.\n", plain(lower), plain(*upper-1))
			} else {
				fmt.Fprintf(p.out, "Value must be at least %s.\n", plain(lower))
			}
			continue
		}
		return value, nil
	}
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Int asks for a whole number in [lower, upper); fractions are truncated
func (p *Prompter) Int(label string, lower int, upper *int) (int, error) {
	var bound *float64
	if upper != nil {
		b := float64(*upper)
		bound = &b
	}
	for {
		value, err := p.Number(label, float64(lower), bound)
		if err != nil {
			return 0, err
		}
		if value >= float64(math.MaxInt) {
			fmt.Fprintln(p.out, "Value is too large.")
			continue
		}
		return int(value), nil
	}
}

// YesNo asks a yes/no question. Polish answers are accepted as well.
func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "t", "tak":
			return true, nil
		case "n", "no", "nie":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer 'yes'/'y' or 'no'/'n'.")
	}
}

// Again asks whether to run another calculation
func (p *Prompter) Again(label string) (bool, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(answer) {
		case "Y", "T":
			return true, nil
		case "N":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please enter 'Y' or 'N'.")
	}
}

// Input is everything one interactive calculation needs
type Input struct {
	Request production.Request
	Elapsed production.Elapsed
}

// Session asks for every building level, the collected runes, the
// projection window and whether to show per-building details
func (p *Prompter) Session(roster *models.Roster) (*Input, error) {
	levels := make([]int, roster.Len())
	for i, b := range roster.Buildings() {
		level, err := p.Int(fmt.Sprintf("%s level: ", b.Name()), 0, nil)
		if err != nil {
			return nil, err
		}
		levels[i] = level
	}

	collected, err := p.Number("Collected runes (for the multiplier): ", 0, nil)
	if err != nil {
		return nil, err
	}

	daysMax, hoursMax, minutesMax := production.MaxDays+1, 24, 60
	var elapsed production.Elapsed
	if elapsed.Days, err = p.Int("Days: ", 0, &daysMax); err != nil {
		return nil, err
	}
	if elapsed.Hours, err = p.Int("Hours: ", 0, &hoursMax); err != nil {
		return nil, err
	}
	if elapsed.Minutes, err = p.Int("Minutes: ", 0, &minutesMax); err != nil {
		return nil, err
	}
	if err := elapsed.Validate(); err != nil {
		return nil, err
	}

	verbose, err := p.YesNo("Show production details per building? (yes/no): ")
	if err != nil {
		return nil, err
	}

	return &Input{
		Request: production.Request{
			Levels:         levels,
			Collected:      collected,
			ElapsedSeconds: elapsed.Seconds(),
			Verbose:        verbose,
		},
		Elapsed: elapsed,
	}, nil
}
