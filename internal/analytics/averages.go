package analytics

import "github.com/misterclayt0n/suren/internal/models"

type ExerciseAverage struct {
	Exercise string  `json:"exercise"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// AveragePerExercise returns the mean rm of each normalized exercise,
// ordered by exercise name.
func AveragePerExercise(records []models.ExerciseRecord) []ExerciseAverage {
	grouped := groupByExercise(records)

	out := make([]ExerciseAverage, 0, len(grouped))
	for _, name := range sortedKeys(grouped) {
		list := grouped[name]
		var sum float64
		for _, r := range list {
			sum += r.RM
		}
		out = append(out, ExerciseAverage{
			Exercise: name,
			Average:  sum / float64(len(list)),
			Count:    len(list),
		})
	}
	return out
}

// ZoneSuccessRate is the rounded percentage of zone records that landed in
// the target zone. ok is false when there are no records.
func ZoneSuccessRate(zones []models.ZoneRecord) (rate int, ok bool) {
	if len(zones) == 0 {
		return 0, false
	}
	hits := 0
	for _, z := range zones {
		if z.Zone == models.ZoneTarget {
			hits++
		}
	}
	return percent(hits, len(zones)), true
}
