package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/runecalc/internal/models"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestNumberRetriesUntilValid(t *testing.T) {
	upper := 24.0
	p, out := newPrompter("abc\n-1\n24\n7\n")

	value, err := p.Number("Hours: ", 0, &upper)

	require.NoError(t, err)
	assert.Equal(t, 7.0, value)
	assert.Equal(t, 4, strings.Count(out.String(), "Hours: "))
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "Value must be between 0 and 23.")
}

func TestNumberRejectsNaNAndInf(t *testing.T) {
	p, out := newPrompter("NaN\nInf\n2.5\n")

	value, err := p.Number("Runes: ", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 2.5, value)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a valid number."))
}

func TestNumberRejectsCommas(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"grouped thousands", "1,000\n1000\n"},
		{"decimal comma", "2,5\n1000\n"},
		{"grouped with decimals", "1,000.5\n1000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newPrompter(tt.input)

			value, err := p.Number("Runes: ", 0, nil)

			require.NoError(t, err)
			assert.Equal(t, 1000.0, value)
			assert.Contains(t, out.String(), "Please enter a valid number.")
		})
	}
}

func TestNumberLowerBoundMessage(t *testing.T) {
	p, out := newPrompter("-3\n0\n")

	value, err := p.Number("Days: ", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 0.0, value)
	assert.Contains(t, out.String(), "Value must be at least 0.")
}

func TestNumberInputClosed(t *testing.T) {
	p, _ := newPrompter("x\n")

	_, err := p.Number("Days: ", 0, nil)

	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestNumberWithoutTrailingNewline(t *testing.T) {
	p, _ := newPrompter("12")

	value, err := p.Number("Days: ", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 12.0, value)
}

func TestIntTruncates(t *testing.T) {
	p, _ := newPrompter("3.9\n")

	value, err := p.Int("Level: ", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, value)
}

func TestIntRejectsValuesPastMaxInt(t *testing.T) {
	p, out := newPrompter("1e19\n9.3e18\n42\n")

	value, err := p.Int("Level: ", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 2, strings.Count(out.String(), "Value is too large."))
}

func TestAskReadFailureClosesInput(t *testing.T) {
	p := New(iotest.ErrReader(errors.New("broken pipe")), &bytes.Buffer{})

	_, err := p.Int("Level: ", 0, nil)

	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{"tak\n", true},
		{"t\n", true},
		{"no\n", false},
		{"NIE\n", false},
		{"maybe\nn\n", false},
	}
	for _, tt := range tests {
		p, _ := newPrompter(tt.input)
		got, err := p.YesNo("Details? ")
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestAgain(t *testing.T) {
	p, out := newPrompter("x\nt\nn\n")

	again, err := p.Again("Repeat? ")
	require.NoError(t, err)
	assert.True(t, again)
	assert.Contains(t, out.String(), "Please enter 'Y' or 'N'.")

	again, err = p.Again("Repeat? ")
	require.NoError(t, err)
	assert.False(t, again)
}

func TestSession(t *testing.T) {
	roster, err := models.NewDefaultRoster(50, nil)
	require.NoError(t, err)

	levels := []string{"25", "10", "0", "0", "0", "0", "0", "0", "0", "0"}
	answers := []string{
		"45",  // runes
		"1",   // days
		"25",  // hours, rejected
		"2",   // hours
		"30",  // minutes
		"yes", // details
	}
	input := strings.Join(append(levels, answers...), "\n") + "\n"
	p, out := newPrompter(input)

	got, err := p.Session(roster)

	require.NoError(t, err)
	assert.Equal(t, []int{25, 10, 0, 0, 0, 0, 0, 0, 0, 0}, got.Request.Levels)
	assert.Equal(t, 45.0, got.Request.Collected)
	assert.Equal(t, int64(86400+2*3600+30*60), got.Request.ElapsedSeconds)
	assert.True(t, got.Request.Verbose)
	assert.Equal(t, 2, got.Elapsed.Hours)
	assert.Contains(t, out.String(), "Seat level: ")
	assert.Contains(t, out.String(), "Toilet level: ")
}

func TestSessionCapsDays(t *testing.T) {
	roster, err := models.NewDefaultRoster(50, nil)
	require.NoError(t, err)

	levels := []string{"0", "0", "0", "0", "0", "0", "0", "0", "0", "0"}
	answers := []string{
		"0",    // runes
		"1e19", // days, past int range
		"2e14", // days, past int64 seconds
		"3",    // days
		"0",    // hours
		"0",    // minutes
		"no",   // details
	}
	input := strings.Join(append(levels, answers...), "\n") + "\n"
	p, out := newPrompter(input)

	got, err := p.Session(roster)

	require.NoError(t, err)
	assert.Equal(t, 3, got.Elapsed.Days)
	assert.Equal(t, int64(3*86400), got.Request.ElapsedSeconds)
	assert.Equal(t, 2, strings.Count(out.String(), "Value must be between 0 and 106751991167299."))
}

func TestSessionStopsOnClosedInput(t *testing.T) {
	roster, err := models.NewDefaultRoster(50, nil)
	require.NoError(t, err)
	p, _ := newPrompter("1\n2\n")

	_, err = p.Session(roster)

	assert.ErrorIs(t, err, ErrInputClosed)
}
