package analytics

import (
	"math"
	"sort"

	"github.com/misterclayt0n/suren/internal/exercise"
	"github.com/misterclayt0n/suren/internal/models"
)

// GoalProgress is the share of an exercise's records that reached its goal.
// When HasGoal is false, Progress carries no meaning and must not be read as 0%.
type GoalProgress struct {
	Exercise string  `json:"exercise"`
	HasGoal  bool    `json:"hasGoal"`
	Goal     float64 `json:"goal,omitempty"`
	Progress int     `json:"progress"`
	Achieved int     `json:"achieved"`
	Total    int     `json:"total"`
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func achieved(rec models.ExerciseRecord, goals models.GoalMap) bool {
	goal, ok := goals.Get(exercise.Normalize(rec.Exercise))
	return ok && rec.RM >= goal
}

// GoalAchievementRate is the rounded percentage of all records whose rm
// reached the goal of their exercise. Records without a goal count as not
// achieved. It is 0 for an empty history.
func GoalAchievementRate(records []models.ExerciseRecord, goals models.GoalMap) int {
	hits := 0
	for _, r := range records {
		if achieved(r, goals) {
			hits++
		}
	}
	return percent(hits, len(records))
}

// groupByExercise buckets records by normalized exercise, keeping history
// order inside each bucket.
func groupByExercise(records []models.ExerciseRecord) map[string][]models.ExerciseRecord {
	grouped := make(map[string][]models.ExerciseRecord)
	for _, r := range records {
		key := exercise.Normalize(r.Exercise)
		grouped[key] = append(grouped[key], r)
	}
	return grouped
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GoalProgressPerExercise reports progress for every exercise in records,
// ordered by exercise name.
func GoalProgressPerExercise(records []models.ExerciseRecord, goals models.GoalMap) []GoalProgress {
	grouped := groupByExercise(records)

	out := make([]GoalProgress, 0, len(grouped))
	for _, name := range sortedKeys(grouped) {
		list := grouped[name]
		p := GoalProgress{Exercise: name, Total: len(list)}

		goal, ok := goals.Get(name)
		if ok {
			p.HasGoal = true
			p.Goal = goal
			for _, r := range list {
				if r.RM >= goal {
					p.Achieved++
				}
			}
			p.Progress = percent(p.Achieved, p.Total)
		}
		out = append(out, p)
	}
	return out
}
