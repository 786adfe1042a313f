package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hans4yu/commerce-insights/internal/dataset"
)

// ErrInvalidRange marks a rejected date-range request.
var ErrInvalidRange = errors.New("invalid date range")

// Range is an inclusive [Start, End] date interval. Both bounds are truncated
// to dates; comparisons ignore the time of day.
type Range struct {
	Start time.Time
	End   time.Time
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewRange validates a user-supplied interval against the dataset bounds.
// An unordered pair is rejected rather than swapped.
func NewRange(start, end, min, max time.Time) (Range, error) {
	start, end = dateOf(start), dateOf(end)

	if start.After(end) {
		return Range{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if !min.IsZero() && start.Before(dateOf(min)) {
		return Range{}, fmt.Errorf("%w: start %s is before the dataset minimum %s",
			ErrInvalidRange, start.Format("2006-01-02"), min.Format("2006-01-02"))
	}
	if !max.IsZero() && end.After(dateOf(max)) {
		return Range{}, fmt.Errorf("%w: end %s is after the dataset maximum %s",
			ErrInvalidRange, end.Format("2006-01-02"), max.Format("2006-01-02"))
	}

	return Range{Start: start, End: end}, nil
}

// Contains reports whether a timestamp falls inside the range. The zero time
// (unapproved orders) is never contained.
func (r Range) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	day := dateOf(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// FilterOrders returns the subset of order facts whose approval timestamp
// falls inside the range. Pure; the input slice is never mutated.
func FilterOrders(orders []dataset.OrderFact, r Range) []dataset.OrderFact {
	filtered := make([]dataset.OrderFact, 0, len(orders))
	for _, o := range orders {
		if r.Contains(o.ApprovedAt) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
