package models

// ExerciseRecord is a single 1RM estimate. RM is derived from Weight, Reps and
// Unit when the record is created and is never edited afterwards.
type ExerciseRecord struct {
	ID       string  `json:"id,omitempty" toml:"id"`
	Exercise string  `json:"exercise" toml:"exercise"`
	Weight   float64 `json:"weight" toml:"weight"`
	Reps     int     `json:"reps" toml:"reps"`
	RM       float64 `json:"rm" toml:"rm"`
	Date     string  `json:"date" toml:"date"` // yyyy-mm-dd
	Unit     Unit    `json:"unit" toml:"unit"`
}

func (r ExerciseRecord) RecordedOn() string { return r.Date }

type ZoneRecord struct {
	ID        string `json:"id,omitempty" toml:"id"`
	Date      string `json:"date" toml:"date"`
	Age       int    `json:"age" toml:"age"`
	HeartRate int    `json:"heartRate" toml:"heart_rate"`
	Zone      string `json:"zone" toml:"zone"`
}

func (r ZoneRecord) RecordedOn() string { return r.Date }

// GoalMap maps a canonical exercise name to its target 1RM. A missing key
// means no goal is set.
type GoalMap map[string]float64

func (g GoalMap) Get(exercise string) (float64, bool) {
	v, ok := g[exercise]
	return v, ok
}
