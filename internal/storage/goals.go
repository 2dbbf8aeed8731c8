package storage

import (
	"strings"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/validation"
	log "github.com/sirupsen/logrus"
)

func (s *Storage) loadGoals() (models.GoalMap, error) {
	goals := models.GoalMap{}
	if _, err := s.loadJSON(KeyGoals, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = models.GoalMap{}
	}
	return goals, nil
}

// Goals returns every goal keyed by canonical exercise name.
func (s *Storage) Goals() models.GoalMap {
	goals, err := s.loadGoals()
	if err != nil {
		log.Errorf("load goals: %s", err)
		return models.GoalMap{}
	}
	return goals
}

// Goal looks up the goal for an already normalized exercise name.
func (s *Storage) Goal(exercise string) (float64, bool) {
	return s.Goals().Get(exercise)
}

// SetGoal stores value as the target 1RM for exercise. Non-positive or
// non-finite values are rejected and nothing is written.
func (s *Storage) SetGoal(exercise string, value float64) error {
	if strings.TrimSpace(exercise) == "" {
		return validation.New("exercise", "select an exercise")
	}
	if !validPositive(value) {
		return validation.New("goal", "enter a target 1RM greater than zero")
	}

	goals, err := s.loadGoals()
	if err != nil {
		return err
	}
	goals[exercise] = value
	return s.saveJSON(KeyGoals, goals)
}

// DeleteGoal removes the goal for exercise; a missing goal is a no-op.
func (s *Storage) DeleteGoal(exercise string) error {
	goals, err := s.loadGoals()
	if err != nil {
		return err
	}
	if _, ok := goals[exercise]; !ok {
		return nil
	}
	delete(goals, exercise)
	return s.saveJSON(KeyGoals, goals)
}
