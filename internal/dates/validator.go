// Package dates validates free-form date input for the gold-price dashboard.
// It understands Polish month names (nominative, genitive and abbreviated,
// with or without diacritics) and prefers day-before-month when a numeric
// format is ambiguous.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// InvalidDateFormatError reports input that could not be parsed as a date.
type InvalidDateFormatError struct {
	Label string
	Raw   string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as a date", e.Label, e.Raw)
}

// DateOutOfRangeError reports a parsed date outside the configured bounds.
type DateOutOfRangeError struct {
	Label string
	Date  time.Time
	Bound time.Time
	// TooEarly is true when the date precedes the minimum bound.
	TooEarly bool
}

func (e *DateOutOfRangeError) Error() string {
	if e.TooEarly {
		return fmt.Sprintf("%s: date %s is before the earliest allowed %s",
			e.Label, e.Date.Format("2006-01-02"), e.Bound.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s: date %s is after the latest allowed %s",
		e.Label, e.Date.Format("2006-01-02"), e.Bound.Format("2006-01-02"))
}

// Validator validates dates against optional minimum and maximum bounds.
// A zero bound means unbounded on that side. Validation is pure; the caller
// decides how to surface a failure.
type Validator struct {
	Min time.Time
	Max time.Time
}

// wordToken matches a run of letters on word boundaries. After normalization
// the input is pure lower-case ASCII, so letter runs are exactly [a-z]+.
var wordToken = regexp.MustCompile(`[a-z]+`)

// parse layouts in order of preference. Numeric forms put the day before the
// month; "3/5/2023" is the 3rd of May, not March 5th.
var layouts = []string{
	"2006-01-02",
	"2.1.2006",
	"2-1-2006",
	"2/1/2006",
	"2 January 2006",
	"January 2, 2006",
	"January 2 2006",
	// Normalization lower-cases the input, so the RFC3339 markers arrive as
	// literal "t" and "z".
	"2006-01-02t15:04:05z",
	"2006-01-02t15:04:05",
	"2006-01-02 15:04:05",
}

// ValidateString normalizes, substitutes Polish month names and parses raw
// into a calendar date, then checks it against the configured bounds.
// label names the field in error messages.
func (v Validator) ValidateString(label, raw string) (time.Time, error) {
	s := substituteMonths(normalize(raw))

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return v.check(label, toDate(t))
		}
	}

	return time.Time{}, &InvalidDateFormatError{Label: label, Raw: raw}
}

// ValidateTime validates an already structured date/time. The time-of-day
// component is dropped so that both input paths yield identical results for
// the same calendar date.
func (v Validator) ValidateTime(label string, t time.Time) (time.Time, error) {
	return v.check(label, toDate(t))
}

func (v Validator) check(label string, d time.Time) (time.Time, error) {
	if !v.Min.IsZero() && d.Before(v.Min) {
		return time.Time{}, &DateOutOfRangeError{Label: label, Date: d, Bound: v.Min, TooEarly: true}
	}
	if !v.Max.IsZero() && d.After(v.Max) {
		return time.Time{}, &DateOutOfRangeError{Label: label, Date: d, Bound: v.Max}
	}
	return d, nil
}

// normalize trims, strips diacritical marks and lower-cases the input.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = stripDiacritics(s)
	return strings.ToLower(s)
}

// stripDiacritics removes combining marks after NFD decomposition.
// Stroked letters do not decompose, so ł is mapped by hand.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.NewReplacer("ł", "l", "Ł", "L").Replace(out)
}

// substituteMonths replaces every whole word that is a recognized month
// token with the English month name. Tokens are looked up in a fixed map, so
// "maj" inside a longer word is left alone.
func substituteMonths(s string) string {
	return wordToken.ReplaceAllStringFunc(s, func(token string) string {
		if m, ok := monthToken(token); ok {
			return m.String()
		}
		return token
	})
}

// toDate truncates a time to midnight UTC.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
