package production

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxDays keeps a full window of days, hours and minutes within int64 seconds
const MaxDays = math.MaxInt64/86400 - 1

var validate = validator.New()

// Elapsed is a projection window entered as days, hours and minutes
type Elapsed struct {
	Days    int `validate:"gte=0,lte=106751991167299"`
	Hours   int `validate:"gte=0,lte=23"`
	Minutes int `validate:"gte=0,lte=59"`
}

// Validate checks the field ranges
func (e Elapsed) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// Seconds returns the window length in seconds
func (e Elapsed) Seconds() int64 {
	return int64(e.Days)*86400 + int64(e.Hours)*3600 + int64(e.Minutes)*60
}

// Duration returns the window as a time.Duration
func (e Elapsed) Duration() time.Duration {
	return time.Duration(e.Seconds()) * time.Second
}

func (e Elapsed) String() string {
	return fmt.Sprintf("%d days, %d hours and %d minutes", e.Days, e.Hours, e.Minutes)
}
