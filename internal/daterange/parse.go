package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateParseError reports a date string that could not be parsed
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// ParseDate parses s permissively (2024-06-01, 2024/06/01, June 1 2024, 20240601, ...)
// and returns the calendar date in local time.
func ParseDate(s string) (d time.Time, err error) {
	// dateparse can panic on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			d, err = time.Time{}, &DateParseError{Value: s, Err: fmt.Errorf("%v", r)}
		}
	}()

	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, &DateParseError{Value: s, Err: fmt.Errorf("empty date")}
	}
	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, &DateParseError{Value: s, Err: err}
	}
	return Day(t), nil
}
