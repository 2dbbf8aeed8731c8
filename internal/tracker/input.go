package tracker

import (
	"math"
	"strconv"
	"strings"

	"github.com/misterclayt0n/suren/internal/validation"
)

func parsePositiveFloat(field, raw, message string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, validation.New(field, message)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, validation.New(field, message)
	}
	return v, nil
}

func parsePositiveInt(field, raw, message string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, validation.New(field, message)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, validation.New(field, message)
	}
	return v, nil
}
