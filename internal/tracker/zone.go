package tracker

import (
	"strings"

	"github.com/misterclayt0n/suren/internal/analytics"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
	"github.com/misterclayt0n/suren/internal/validation"
	log "github.com/sirupsen/logrus"
)

// ZoneInput is the raw form of a heart-rate zone check. An empty Age falls
// back to the last age entered.
type ZoneInput struct {
	Age       string
	HeartRate string
}

type ZoneResult struct {
	Record         models.ZoneRecord        `json:"record"`
	Classification utils.ZoneClassification `json:"classification"`
}

func (t *Tracker) CalculateZone(in ZoneInput) (ZoneResult, error) {
	var (
		age int
		err error
	)
	if strings.TrimSpace(in.Age) == "" {
		stored, ok := t.st.Age()
		if !ok {
			return ZoneResult{}, validation.New("age", "enter your age")
		}
		age = stored
	} else {
		age, err = parsePositiveInt("age", in.Age, "enter your age as a whole number")
		if err != nil {
			return ZoneResult{}, err
		}
	}
	hr, err := parsePositiveInt("heartRate", in.HeartRate, "enter your heart rate in bpm")
	if err != nil {
		return ZoneResult{}, err
	}

	if err := t.st.SetAge(age); err != nil {
		return ZoneResult{}, err
	}

	c := utils.ClassifyZone(age, hr)
	rec, err := t.st.AppendZone(models.ZoneRecord{
		Date:      utils.Today(t.now()),
		Age:       age,
		HeartRate: hr,
		Zone:      c.Zone,
	})
	if err != nil {
		return ZoneResult{}, err
	}
	log.Debugf("recorded heart rate %d bpm in %s", hr, c.Zone)

	return ZoneResult{Record: rec, Classification: c}, nil
}

// Zones lists zone records, newest first, limited to window.
func (t *Tracker) Zones(window models.Window) []models.ZoneRecord {
	return analytics.FilterByWindow(t.st.ZoneHistory(), window, t.now())
}

func (t *Tracker) DeleteZone(id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, validation.New("id", "is required")
	}
	return t.st.RemoveZone(id)
}

// DeleteZoneAt removes the zone record at index in the full, unfiltered
// listing.
func (t *Tracker) DeleteZoneAt(index int) (bool, error) {
	return t.st.RemoveZoneAt(index)
}

// StoredAge returns the last age entered, if any.
func (t *Tracker) StoredAge() (int, bool) {
	return t.st.Age()
}
