// Package narrator turns exercise trends into short coaching notes.
package narrator

import (
	"math/rand/v2"

	"github.com/misterclayt0n/suren/internal/analytics"
	"github.com/misterclayt0n/suren/internal/models"
)

var pools = map[models.Trend][]string{
	models.TrendProgress: {
		"Steady improvement in recent weeks.",
		"Great work! You're making gains.",
		"Progressing well—keep it going!",
	},
	models.TrendStable: {
		"Performance is consistent. Stay focused!",
		"Holding steady. Maintain the routine.",
		"Stable progress—nice and controlled.",
	},
	models.TrendRegressing: {
		"Performance has dipped. Consider reviewing your form.",
		"Regression detected rest or adjust your plan.",
		"You're losing ground. Reflect and refocus.",
	},
}

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Note is the coaching line for one exercise.
type Note struct {
	Exercise string       `json:"exercise"`
	Trend    models.Trend `json:"trend"`
	Message  string       `json:"message"`
}

type Narrator struct {
	picker Picker
}

// New returns a Narrator drawing from picker, or from the global source
// when picker is nil.
func New(picker Picker) *Narrator {
	if picker == nil {
		picker = globalPicker{}
	}
	return &Narrator{picker: picker}
}

// Pool returns a copy of the messages used for trend.
func Pool(trend models.Trend) []string {
	return append([]string(nil), pools[trend]...)
}

// Message renders "Exercise: message" for a known trend and "" otherwise.
func (n *Narrator) Message(exercise string, trend models.Trend) string {
	pool := pools[trend]
	if len(pool) == 0 {
		return ""
	}
	return exercise + ": " + pool[n.picker.IntN(len(pool))]
}

// Notes narrates every trend, keeping their order.
func (n *Narrator) Notes(trends []analytics.ExerciseTrend) []Note {
	out := make([]Note, 0, len(trends))
	for _, t := range trends {
		out = append(out, Note{
			Exercise: t.Exercise,
			Trend:    t.Trend,
			Message:  n.Message(t.Exercise, t.Trend),
		})
	}
	return out
}
