package dates

import (
	"fmt"
	"time"
)

// MaxRangeDays is the widest window the NBP archive serves in one request.
const MaxRangeDays = 93

// ArchiveFloor is the earliest date the NBP gold-price archive has data for.
var ArchiveFloor = time.Date(2013, time.January, 2, 0, 0, 0, 0, time.UTC)

// InvalidRangeError reports a start/end pair that does not form a valid
// query window (ordering or span). Bound violations on a single endpoint are
// reported as DateOutOfRangeError instead.
type InvalidRangeError struct {
	Start  time.Time
	End    time.Time
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %s..%s: %s",
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"), e.Reason)
}

// DateRange is a validated, immutable query window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates start and end against the archive bounds and the
// 93-day window limit and returns the range.
func NewDateRange(start, end time.Time) (DateRange, error) {
	return newDateRange(start, end, time.Now().UTC())
}

func newDateRange(start, end, now time.Time) (DateRange, error) {
	start = toDate(start)
	end = toDate(end)
	today := toDate(now)

	v := Validator{Min: ArchiveFloor, Max: today}
	if _, err := v.ValidateTime("start", start); err != nil {
		return DateRange{}, err
	}
	if _, err := v.ValidateTime("end", end); err != nil {
		return DateRange{}, err
	}

	if end.Before(start) {
		return DateRange{}, &InvalidRangeError{Start: start, End: end, Reason: "start is after end"}
	}

	if days := rangeDays(start, end); days > MaxRangeDays {
		return DateRange{}, &InvalidRangeError{
			Start:  start,
			End:    end,
			Reason: fmt.Sprintf("spans %d days, the archive allows at most %d", days, MaxRangeDays),
		}
	}

	return DateRange{Start: start, End: end}, nil
}

// Days returns the span of the range in days.
func (r DateRange) Days() int {
	return rangeDays(r.Start, r.End)
}

// String renders the range as "start..end" in ISO format.
func (r DateRange) String() string {
	return r.Start.Format("2006-01-02") + ".." + r.End.Format("2006-01-02")
}

func rangeDays(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
