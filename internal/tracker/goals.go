package tracker

import (
	"strings"

	"github.com/misterclayt0n/suren/internal/exercise"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/validation"
)

// SaveGoal sets the target 1RM for an exercise from raw input.
func (t *Tracker) SaveGoal(name, value string) (string, float64, error) {
	if strings.TrimSpace(name) == "" {
		return "", 0, validation.New("exercise", "select an exercise")
	}
	goal, err := parsePositiveFloat("goal", value, "enter a target 1RM greater than zero")
	if err != nil {
		return "", 0, err
	}

	canonical := exercise.Normalize(name)
	if err := t.st.SetGoal(canonical, goal); err != nil {
		return "", 0, err
	}
	return canonical, goal, nil
}

func (t *Tracker) DeleteGoal(name string) error {
	if strings.TrimSpace(name) == "" {
		return validation.New("exercise", "select an exercise")
	}
	return t.st.DeleteGoal(exercise.Normalize(name))
}

func (t *Tracker) Goal(name string) (float64, bool) {
	return t.st.Goal(exercise.Normalize(name))
}

func (t *Tracker) Goals() models.GoalMap {
	return t.st.Goals()
}
