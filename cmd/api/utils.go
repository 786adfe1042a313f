package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
)

const dateLayout = "2006-01-02"

// parseRange reads start_date/end_date query params, defaulting each missing
// bound to the dataset's own bounds, and validates the resulting interval.
func (app *application) parseRange(r *http.Request) (analytics.Range, error) {
	min, max := app.data.Bounds()

	start, err := parseDateOrDefault(r.URL.Query().Get("start_date"), min)
	if err != nil {
		return analytics.Range{}, err
	}
	end, err := parseDateOrDefault(r.URL.Query().Get("end_date"), max)
	if err != nil {
		return analytics.Range{}, err
	}

	return analytics.NewRange(start, end, min, max)
}

func parseDateOrDefault(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected %s, got %q", analytics.ErrInvalidRange, dateLayout, dateStr)
	}
	return t, nil
}
