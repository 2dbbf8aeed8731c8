package utils

import "github.com/misterclayt0n/suren/internal/models"

type ZoneRange struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

type ZoneClassification struct {
	MaxHR  int         `json:"maxHR"`
	Zone   string      `json:"zone"`
	Ranges []ZoneRange `json:"ranges"`
}

// Range returns the bounds of the named zone.
func (c ZoneClassification) Range(name string) (ZoneRange, bool) {
	for _, r := range c.Ranges {
		if r.Name == name {
			return r, true
		}
	}
	return ZoneRange{}, false
}

// Zone bounds as percentages of max heart rate. Zone i covers
// [zoneBounds[i], zoneBounds[i+1]).
var (
	zoneNames  = []string{"Zone 1", "Zone 2", "Zone 3", "Zone 4", "Zone 5"}
	zoneBounds = []int{50, 60, 70, 80, 90, 100}
)

func MaxHeartRate(age int) int {
	return 220 - age
}

// ClassifyZone picks the first zone whose half-open range holds heartRate.
// Comparisons are done in integer percent units so bounds like 0.7*190 are exact.
func ClassifyZone(age, heartRate int) ZoneClassification {
	maxHR := MaxHeartRate(age)
	c := ZoneClassification{
		MaxHR:  maxHR,
		Zone:   models.ZoneOutOfRange,
		Ranges: make([]ZoneRange, 0, len(zoneNames)),
	}

	found := false
	for i, name := range zoneNames {
		lo, hi := zoneBounds[i], zoneBounds[i+1]
		c.Ranges = append(c.Ranges, ZoneRange{
			Name: name,
			Min:  float64(lo*maxHR) / 100,
			Max:  float64(hi*maxHR) / 100,
		})

		scaled := heartRate * 100
		if !found && scaled >= lo*maxHR && scaled < hi*maxHR {
			c.Zone = name
			found = true
		}
	}

	return c
}
