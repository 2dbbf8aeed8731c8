package utils

import (
	"math"

	"github.com/misterclayt0n/suren/internal/models"
)

const KgToLb = 2.20462

// CalculateEpley1RM returns weight * (1 + reps/30), unrounded.
func CalculateEpley1RM(weight float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}

	return weight * (1 + float64(reps)/30)
}

// Raw1RM applies the Epley formula and, for lb, converts the result with
// KgToLb. The result is not rounded.
func Raw1RM(weight float64, reps int, unit models.Unit) float64 {
	raw := CalculateEpley1RM(weight, reps)
	if unit == models.UnitLB {
		raw *= KgToLb
	}
	return raw
}

// Estimate1RM is Raw1RM rounded to one decimal, the value that is stored.
func Estimate1RM(weight float64, reps int, unit models.Unit) float64 {
	return Round1(Raw1RM(weight, reps, unit))
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
