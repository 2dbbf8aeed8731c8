package exercise

import "strings"

const (
	BenchPress    = "Bench Press"
	Squat         = "Squat"
	Deadlift      = "Deadlift"
	OverheadPress = "Overhead Press"
	BarbellRow    = "Barbell Row"
)

// Known lists the exercises offered for selection, in display order.
var Known = []string{BenchPress, Squat, Deadlift, OverheadPress, BarbellRow}

// aliases maps localized or alternate spellings to a canonical label.
// Canonical labels must never appear as keys so Normalize stays idempotent.
var aliases = map[string]string{
	"벤치프레스":    BenchPress,
	"벤치 프레스":   BenchPress,
	"스쿼트":      Squat,
	"바벨로우":     BarbellRow,
	"데드리프트":    Deadlift,
	"오버헤드프레스":  OverheadPress,
	"오버헤드 프레스": OverheadPress,
}

// Normalize returns the canonical label for name. Unknown names are returned
// trimmed and otherwise unchanged.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if canonical, ok := aliases[trimmed]; ok {
		return canonical
	}
	return trimmed
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

func IsKnown(name string) bool {
	n := Normalize(name)
	for _, k := range Known {
		if k == n {
			return true
		}
	}
	return false
}
