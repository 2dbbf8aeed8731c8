// Package analytics derives summary figures from the persisted histories:
// goal achievement, personal bests, trends, averages and chart series.
// Everything here is a pure function of its inputs.
package analytics

import (
	"time"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
)

// Dated is implemented by every history record.
type Dated interface {
	RecordedOn() string
}

const day = 24 * time.Hour

// FilterByWindow keeps the records whose stored date is at most 7 (week) or
// 30 (month) days before now, measured as elapsed time from UTC midnight of
// that date. Records with an unparseable date only survive WindowAll.
func FilterByWindow[T Dated](records []T, window models.Window, now time.Time) []T {
	var limit time.Duration
	switch window {
	case models.WindowWeek:
		limit = 7 * day
	case models.WindowMonth:
		limit = 30 * day
	default:
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		d, err := utils.ParseDate(r.RecordedOn())
		if err != nil {
			continue
		}
		if now.Sub(d) <= limit {
			out = append(out, r)
		}
	}
	return out
}
