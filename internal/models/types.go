package models

import (
	"fmt"
	"strings"
)

type Unit string

const (
	UnitKG Unit = "kg"
	UnitLB Unit = "lb"
)

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kg":
		return UnitKG, nil
	case "lb", "lbs":
		return UnitLB, nil
	default:
		return "", fmt.Errorf("unknown unit %q", s)
	}
}

func (u Unit) Valid() bool {
	return u == UnitKG || u == UnitLB
}

// Window selects how far back a history listing reaches.
type Window string

const (
	WindowAll   Window = "all"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return WindowAll, nil
	case "week", "weekly":
		return WindowWeek, nil
	case "month", "monthly":
		return WindowMonth, nil
	default:
		return "", fmt.Errorf("unknown window %q (use all, week or month)", s)
	}
}

type Trend string

const (
	TrendProgress   Trend = "Progress"
	TrendStable     Trend = "Stable"
	TrendRegressing Trend = "Regressing"
)

const (
	ZoneOutOfRange = "Out of range"
	// ZoneTarget is the zone counted as a successful cardio session.
	ZoneTarget = "Zone 2"
)
