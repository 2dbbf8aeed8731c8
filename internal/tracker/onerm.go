package tracker

import (
	"strings"

	"github.com/misterclayt0n/suren/internal/analytics"
	"github.com/misterclayt0n/suren/internal/exercise"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
	"github.com/misterclayt0n/suren/internal/validation"
	log "github.com/sirupsen/logrus"
)

// OneRMInput is the raw form of a 1RM calculation.
type OneRMInput struct {
	Exercise string
	Weight   string
	Reps     string
	Unit     string
}

type OneRMResult struct {
	Record      models.ExerciseRecord `json:"record"`
	HasGoal     bool                  `json:"hasGoal"`
	Goal        float64               `json:"goal,omitempty"`
	GoalReached bool                  `json:"goalReached"`
}

// Calculate1RM validates the input, estimates the 1RM with the Epley formula
// and records it. Invalid input is rejected with a *validation.Error and
// nothing is written.
func (t *Tracker) Calculate1RM(in OneRMInput) (OneRMResult, error) {
	if strings.TrimSpace(in.Exercise) == "" {
		return OneRMResult{}, validation.New("exercise", "select an exercise")
	}
	weight, err := parsePositiveFloat("weight", in.Weight, "enter a weight greater than zero")
	if err != nil {
		return OneRMResult{}, err
	}
	reps, err := parsePositiveInt("reps", in.Reps, "enter a whole number of reps greater than zero")
	if err != nil {
		return OneRMResult{}, err
	}
	unit, err := models.ParseUnit(in.Unit)
	if err != nil {
		return OneRMResult{}, validation.New("unit", err.Error())
	}

	raw := utils.Raw1RM(weight, reps, unit)
	rec := models.ExerciseRecord{
		Exercise: exercise.Normalize(in.Exercise),
		Weight:   weight,
		Reps:     reps,
		RM:       utils.Round1(raw),
		Date:     utils.Today(t.now()),
		Unit:     unit,
	}

	if err := t.st.SetLatest(rec); err != nil {
		return OneRMResult{}, err
	}
	rec, err = t.st.AppendOneRM(rec)
	if err != nil {
		return OneRMResult{}, err
	}
	// The record is committed; a failure here only leaves a slot that
	// reconciliation recognizes as the history head.
	if err := t.st.ClearLatest(); err != nil {
		log.Errorf("clear staged estimate: %s", err)
	}
	log.Debugf("recorded %s 1RM %.1f%s", rec.Exercise, rec.RM, rec.Unit)

	res := OneRMResult{Record: rec}
	if goal, ok := t.st.Goal(rec.Exercise); ok {
		res.HasGoal = true
		res.Goal = goal
		// Compared before rounding: 116.67 does not reach a goal of 116.7.
		res.GoalReached = raw >= goal
	}
	return res, nil
}

// History lists recorded estimates, newest first, limited to window.
func (t *Tracker) History(window models.Window) []models.ExerciseRecord {
	return analytics.FilterByWindow(t.st.OneRMHistory(), window, t.now())
}

// DeleteRecord removes the estimate with the given id. Deleting an unknown
// id is not an error.
func (t *Tracker) DeleteRecord(id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, validation.New("id", "is required")
	}
	return t.st.RemoveOneRM(id)
}

// DeleteMatching removes every estimate equal to the given date, exercise
// and rm, duplicates included. It is the way to target records that were
// stored before ids existed.
func (t *Tracker) DeleteMatching(date, name string, rm float64) (int, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return 0, validation.Errorf("date", "%q is not a yyyy-mm-dd date", date)
	}
	if strings.TrimSpace(name) == "" {
		return 0, validation.New("exercise", "select an exercise")
	}
	return t.st.RemoveOneRMMatching(models.ExerciseRecord{
		Date:     date,
		Exercise: exercise.Normalize(name),
		RM:       rm,
	})
}
