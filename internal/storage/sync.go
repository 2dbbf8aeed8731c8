package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/suren/internal/models"
	"go.uber.org/multierr"
)

// Snapshot is the TOML dump of every persisted collection.
type Snapshot struct {
	ExportedAt time.Time               `toml:"exported_at"`
	UserAge    int                     `toml:"user_age,omitempty"`
	Goals      models.GoalMap          `toml:"goals"`
	History    []models.ExerciseRecord `toml:"history"`
	Zones      []models.ZoneRecord     `toml:"zone"`
}

func (s *Storage) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		ExportedAt: now.UTC(),
		Goals:      s.Goals(),
		History:    s.OneRMHistory(),
		Zones:      s.ZoneHistory(),
	}
	if age, ok := s.Age(); ok {
		snap.UserAge = age
	}
	return snap
}

// Export writes all collections to w as TOML.
func (s *Storage) Export(w io.Writer, now time.Time) error {
	if err := toml.NewEncoder(w).Encode(s.Snapshot(now)); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// Import replaces every collection with the contents of a TOML dump and
// empties the staging slot. The whole dump is validated first; nothing is
// written if any record is invalid.
func (s *Storage) Import(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if _, err := toml.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("Decoding TOML: %w", err)
	}

	var errs error
	for i, rec := range snap.History {
		if err := validateOneRM(rec); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("history[%d]: %w", i, err))
		}
	}
	for i, rec := range snap.Zones {
		if err := validateZone(rec); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("zone[%d]: %w", i, err))
		}
	}
	for exercise, goal := range snap.Goals {
		if !validPositive(goal) {
			errs = multierr.Append(errs, fmt.Errorf("goal %s: must be greater than zero", exercise))
		}
	}
	if errs != nil {
		return Snapshot{}, errs
	}

	for i := range snap.History {
		if snap.History[i].ID == "" {
			snap.History[i].ID = s.newID()
		}
	}
	for i := range snap.Zones {
		if snap.Zones[i].ID == "" {
			snap.Zones[i].ID = s.newID()
		}
	}
	if snap.Goals == nil {
		snap.Goals = models.GoalMap{}
	}
	if snap.History == nil {
		snap.History = []models.ExerciseRecord{}
	}
	if snap.Zones == nil {
		snap.Zones = []models.ZoneRecord{}
	}

	err := multierr.Combine(
		s.saveJSON(KeyHistory, snap.History),
		s.saveJSON(KeyZoneRecords, snap.Zones),
		s.saveJSON(KeyGoals, snap.Goals),
		s.ClearLatest(),
	)
	if err == nil && snap.UserAge > 0 {
		err = s.SetAge(snap.UserAge)
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
