package analytics

import "github.com/misterclayt0n/suren/internal/models"

type PersonalBest struct {
	Exercise string                `json:"exercise"`
	Record   models.ExerciseRecord `json:"record"`
}

// BestRecord returns the record with the highest rm. On ties the earliest
// one in history order wins, which for newest-first history is the most
// recent. ok is false for an empty history.
func BestRecord(records []models.ExerciseRecord) (best models.ExerciseRecord, ok bool) {
	for i, r := range records {
		if i == 0 || r.RM > best.RM {
			best = r
		}
	}
	return best, len(records) > 0
}

// BestRecordPerExercise returns one personal best per normalized exercise,
// ordered by exercise name.
func BestRecordPerExercise(records []models.ExerciseRecord) []PersonalBest {
	grouped := groupByExercise(records)

	out := make([]PersonalBest, 0, len(grouped))
	for _, name := range sortedKeys(grouped) {
		best, _ := BestRecord(grouped[name])
		out = append(out, PersonalBest{Exercise: name, Record: best})
	}
	return out
}
