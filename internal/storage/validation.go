package storage

import (
	"math"
	"strings"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
	"github.com/misterclayt0n/suren/internal/validation"
)

func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func validateOneRM(rec models.ExerciseRecord) error {
	if strings.TrimSpace(rec.Exercise) == "" {
		return validation.New("exercise", "is required")
	}
	if !validPositive(rec.Weight) {
		return validation.New("weight", "must be a positive number")
	}
	if rec.Reps <= 0 {
		return validation.New("reps", "must be a positive integer")
	}
	if !rec.Unit.Valid() {
		return validation.Errorf("unit", "unknown unit %q", rec.Unit)
	}
	if _, err := utils.ParseDate(rec.Date); err != nil {
		return validation.Errorf("date", "%q is not a yyyy-mm-dd date", rec.Date)
	}
	return nil
}

func validateZone(rec models.ZoneRecord) error {
	if rec.Age <= 0 {
		return validation.New("age", "must be a positive integer")
	}
	if rec.HeartRate <= 0 {
		return validation.New("heartRate", "must be a positive integer")
	}
	if rec.Zone == "" {
		return validation.New("zone", "is required")
	}
	if _, err := utils.ParseDate(rec.Date); err != nil {
		return validation.Errorf("date", "%q is not a yyyy-mm-dd date", rec.Date)
	}
	return nil
}
