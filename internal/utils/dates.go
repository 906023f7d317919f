package utils

import (
	"fmt"
	"time"

	"github.com/X1ag/BahnBestpreis/internal/domain"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"

	// RequestHour is the wall-clock hour every daily best-price query starts at.
	RequestHour = 8
)

// GenerateDates returns count timestamps at RequestHour in loc, starting on
// startDate (YYYY-MM-DD) and advancing one calendar day at a time.
func GenerateDates(startDate string, count int, loc *time.Location) ([]time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateLayout, startDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", domain.ErrInvalidDate, startDate, err)
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), RequestHour, 0, 0, 0, loc)

	dates := []time.Time{}
	for i := 0; i < count; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates, nil
}
