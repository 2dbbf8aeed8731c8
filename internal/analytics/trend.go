package analytics

import "github.com/misterclayt0n/suren/internal/models"

const (
	trendWindow    = 3
	trendThreshold = 0.5
)

type ExerciseTrend struct {
	Exercise string       `json:"exercise"`
	Trend    models.Trend `json:"trend"`
}

// Trend classifies one exercise's records, given newest first as stored.
// The three most recently inserted records are put in oldest-to-newest order
// and their two consecutive rm deltas averaged: above 0.5 is Progress, below
// -0.5 is Regressing. Fewer than three records is always Stable.
func Trend(records []models.ExerciseRecord) models.Trend {
	if len(records) < trendWindow {
		return models.TrendStable
	}

	// records[0] is the newest, so walk the head backwards.
	r1, r2, r3 := records[2].RM, records[1].RM, records[0].RM
	avg := ((r2 - r1) + (r3 - r2)) / 2

	switch {
	case avg > trendThreshold:
		return models.TrendProgress
	case avg < -trendThreshold:
		return models.TrendRegressing
	default:
		return models.TrendStable
	}
}

// Trends classifies every exercise in a newest-first history, ordered by
// exercise name.
func Trends(records []models.ExerciseRecord) []ExerciseTrend {
	grouped := groupByExercise(records)

	out := make([]ExerciseTrend, 0, len(grouped))
	for _, name := range sortedKeys(grouped) {
		out = append(out, ExerciseTrend{Exercise: name, Trend: Trend(grouped[name])})
	}
	return out
}
