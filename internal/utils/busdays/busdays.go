package busdays

import (
	"fmt"
	"time"

	"github.com/ratehub/fx_rates_service/internal/apperrors"
)

// Normalize strips the time component of t, pinning it to midnight UTC so
// dates compare and store consistently.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether t falls on a weekday (Mon-Fri).
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ExpandBusinessDays returns every weekday from start to end inclusive, in
// ascending order. When start equals end the result holds start if it is a
// weekday and is empty otherwise.
func ExpandBusinessDays(start, end time.Time) ([]time.Time, error) {
	start = Normalize(start)
	end = Normalize(end)

	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is before %s", apperrors.ErrInvalidRange,
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days, nil
}
