// Package dateformat renders day-of-month ordinals and convention date
// ranges. Output is built by hand rather than through locale-aware
// formatting so the strings are identical across environments.
package dateformat

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDay is returned when a day-of-month value is zero or negative.
var ErrInvalidDay = errors.New("dateformat: day of month must be positive")

// Suffix returns the English ordinal suffix for n ("st", "nd", "rd" or "th").
// Numbers whose value mod 100 falls in 10-19 always take "th" (11th, 12th,
// 13th, 111th); everything else branches on the last digit.
func Suffix(n int) string {
	if n%100 >= 10 && n%100 <= 19 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// WithSuffix returns the day concatenated with its ordinal suffix,
// e.g. 21 -> "21st". No calendar day is zero or negative, so such
// input is rejected rather than silently suffixed.
func WithSuffix(day int) (string, error) {
	if day < 1 {
		return "", ErrInvalidDay
	}
	return dayWithSuffix(day), nil
}

func dayWithSuffix(day int) string {
	return fmt.Sprintf("%d%s", day, Suffix(day))
}

// ShortRange renders a compact date range for a convention. The month is
// elided for the end date when both dates fall in the same month of the
// same year; the year always comes from the end date.
//
//	April 20th - 22nd, 2018
//	April 30th - May 2nd, 2018
//
// An end date before the start date still renders; the result just reads
// backwards. Validation belongs to whoever created the pair.
func ShortRange(start, end time.Time) string {
	if start.Month() == end.Month() && start.Year() == end.Year() {
		return fmt.Sprintf("%s %s - %s, %d",
			start.Month(), dayWithSuffix(start.Day()),
			dayWithSuffix(end.Day()), end.Year())
	}
	return fmt.Sprintf("%s %s - %s %s, %d",
		start.Month(), dayWithSuffix(start.Day()),
		end.Month(), dayWithSuffix(end.Day()), end.Year())
}

// LongRange renders the full form with weekday names. The month is always
// repeated for both dates, even within a single month.
//
//	Friday, April 20th - Sunday, April 22nd, 2018
func LongRange(start, end time.Time) string {
	return fmt.Sprintf("%s, %s %s - %s, %s %s, %d",
		start.Weekday(), start.Month(), dayWithSuffix(start.Day()),
		end.Weekday(), end.Month(), dayWithSuffix(end.Day()), end.Year())
}
