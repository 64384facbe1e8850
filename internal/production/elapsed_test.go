package production

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedSeconds(t *testing.T) {
	e := Elapsed{Days: 1, Hours: 1, Minutes: 1}
	assert.NoError(t, e.Validate())
	assert.Equal(t, int64(90060), e.Seconds())
	assert.Equal(t, 25*time.Hour+time.Minute, e.Duration())
	assert.Equal(t, "1 days, 1 hours and 1 minutes", e.String())
}

func TestElapsedValidate(t *testing.T) {
	tests := []struct {
		name    string
		elapsed Elapsed
		valid   bool
	}{
		{"zero", Elapsed{}, true},
		{"upper bounds", Elapsed{Days: 365, Hours: 23, Minutes: 59}, true},
		{"negative days", Elapsed{Days: -1}, false},
		{"24 hours", Elapsed{Hours: 24}, false},
		{"60 minutes", Elapsed{Minutes: 60}, false},
		{"negative minutes", Elapsed{Minutes: -5}, false},
		{"max days", Elapsed{Days: MaxDays, Hours: 23, Minutes: 59}, true},
		{"days past int64 seconds", Elapsed{Days: MaxDays + 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.elapsed.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			}
		})
	}
}

func TestElapsedSecondsAtMaxDays(t *testing.T) {
	e := Elapsed{Days: MaxDays, Hours: 23, Minutes: 59}
	assert.Positive(t, e.Seconds())
	assert.Equal(t, int64(MaxDays)*86400+23*3600+59*60, e.Seconds())
}
