package analytics

import (
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
)

// Series is what a chart needs: one label per point, the values and the
// colour tokens to paint them with.
type Series struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

func (s Series) Len() int { return len(s.Data) }

// Palette is cycled through for per-exercise charts.
var Palette = []string{
	"#4ade80", "#60a5fa", "#fbbf24", "#f87171", "#a78bfa", "#f472b6", "#34d399",
}

const (
	lineColor     = "#111"
	zoneLineColor = "#333"
)

func paletteColors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = Palette[i%len(Palette)]
	}
	return out
}

// OneRMSeries plots a newest-first history oldest to newest.
func OneRMSeries(records []models.ExerciseRecord) Series {
	s := Series{
		Label:  "1RM",
		Labels: make([]string, 0, len(records)),
		Data:   make([]float64, 0, len(records)),
		Colors: []string{lineColor},
	}
	for i := len(records) - 1; i >= 0; i-- {
		s.Labels = append(s.Labels, records[i].Date)
		s.Data = append(s.Data, records[i].RM)
	}
	return s
}

// HeartRateSeries plots newest-first zone records oldest to newest.
func HeartRateSeries(zones []models.ZoneRecord) Series {
	s := Series{
		Label:  "Heart Rate (bpm)",
		Labels: make([]string, 0, len(zones)),
		Data:   make([]float64, 0, len(zones)),
		Colors: []string{zoneLineColor},
	}
	for i := len(zones) - 1; i >= 0; i-- {
		s.Labels = append(s.Labels, zones[i].Date)
		s.Data = append(s.Data, float64(zones[i].HeartRate))
	}
	return s
}

// AverageSeries is the bar chart of mean rm per exercise, one decimal.
func AverageSeries(averages []ExerciseAverage) Series {
	s := Series{
		Label:  "Average 1RM",
		Labels: make([]string, 0, len(averages)),
		Data:   make([]float64, 0, len(averages)),
		Colors: paletteColors(len(averages)),
	}
	for _, a := range averages {
		s.Labels = append(s.Labels, a.Exercise)
		s.Data = append(s.Data, utils.Round1(a.Average))
	}
	return s
}

// GoalSeries is the doughnut chart of goal progress. Exercises without a
// goal are left out.
func GoalSeries(progress []GoalProgress) Series {
	s := Series{
		Label:  "% Goal Achieved",
		Labels: make([]string, 0, len(progress)),
		Data:   make([]float64, 0, len(progress)),
	}
	for _, p := range progress {
		if !p.HasGoal {
			continue
		}
		s.Labels = append(s.Labels, p.Exercise)
		s.Data = append(s.Data, float64(p.Progress))
	}
	s.Colors = paletteColors(len(s.Data))
	return s
}
