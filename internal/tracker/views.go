package tracker

import (
	"github.com/misterclayt0n/suren/internal/analytics"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/narrator"
	"github.com/misterclayt0n/suren/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Charts struct {
	Averages  analytics.Series `json:"averages"`
	Goals     analytics.Series `json:"goals"`
	OneRM     analytics.Series `json:"oneRM"`
	HeartRate analytics.Series `json:"heartRate"`
}

type Insight struct {
	Averages    []analytics.ExerciseAverage `json:"averages"`
	GoalRate    int                         `json:"goalRate"`
	Progress    []analytics.GoalProgress    `json:"progress"`
	Best        *models.ExerciseRecord      `json:"best,omitempty"`
	Bests       []analytics.PersonalBest    `json:"bests"`
	Trends      []analytics.ExerciseTrend   `json:"trends"`
	Notes       []narrator.Note             `json:"notes"`
	ZoneRate    int                         `json:"zoneRate"`
	HasZoneRate bool                        `json:"hasZoneRate"`
	Charts      Charts                      `json:"charts"`
}

// history returns the estimate history with any staged estimate folded in.
func (t *Tracker) history() []models.ExerciseRecord {
	records, err := t.st.ReconcileLatest()
	if err != nil {
		log.Errorf("reconcile latest estimate: %s", err)
		return t.st.OneRMHistory()
	}
	return records
}

// Insight computes every analytic over the full history.
func (t *Tracker) Insight() Insight {
	records := t.history()
	goals := t.st.Goals()
	zones := t.st.ZoneHistory()

	in := Insight{
		Averages: analytics.AveragePerExercise(records),
		GoalRate: analytics.GoalAchievementRate(records, goals),
		Progress: analytics.GoalProgressPerExercise(records, goals),
		Bests:    analytics.BestRecordPerExercise(records),
		Trends:   analytics.Trends(records),
	}
	if best, ok := analytics.BestRecord(records); ok {
		in.Best = &best
	}
	in.Notes = t.narr.Notes(in.Trends)
	in.ZoneRate, in.HasZoneRate = analytics.ZoneSuccessRate(zones)
	in.Charts = Charts{
		Averages:  analytics.AverageSeries(in.Averages),
		Goals:     analytics.GoalSeries(in.Progress),
		OneRM:     analytics.OneRMSeries(records),
		HeartRate: analytics.HeartRateSeries(zones),
	}
	return in
}

type Dashboard struct {
	Today       string                 `json:"today"`
	LatestOneRM *models.ExerciseRecord `json:"latestOneRM,omitempty"`
	LatestZone  *models.ZoneRecord     `json:"latestZone,omitempty"`
	GoalRate    int                    `json:"goalRate"`
	Records     int                    `json:"records"`
}

func (t *Tracker) Dashboard() Dashboard {
	records := t.history()
	zones := t.st.ZoneHistory()

	d := Dashboard{
		Today:    utils.FormatLong(utils.Today(t.now())),
		GoalRate: analytics.GoalAchievementRate(records, t.st.Goals()),
		Records:  len(records),
	}
	if len(records) > 0 {
		d.LatestOneRM = &records[0]
	}
	if len(zones) > 0 {
		d.LatestZone = &zones[0]
	}
	return d
}
