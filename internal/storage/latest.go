package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/suren/internal/kv"
	"github.com/misterclayt0n/suren/internal/models"
	log "github.com/sirupsen/logrus"
)

// Latest returns the staged estimate written by the last calculation, if any.
func (s *Storage) Latest() (*models.ExerciseRecord, error) {
	var rec models.ExerciseRecord
	found, err := s.loadJSON(KeyLatestOneRM, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) SetLatest(rec models.ExerciseRecord) error {
	return s.saveJSON(KeyLatestOneRM, rec)
}

// ClearLatest empties the staging slot once its estimate is in the history.
func (s *Storage) ClearLatest() error {
	if err := s.kv.Delete(KeyLatestOneRM); err != nil {
		return fmt.Errorf("failed to clear %s: %w", KeyLatestOneRM, err)
	}
	return nil
}

// stagedMatches reports whether the staged estimate is rec. A staged record
// with an id only matches that id.
func stagedMatches(staged, rec models.ExerciseRecord) bool {
	if staged.ID != "" {
		return staged.ID == rec.ID
	}
	return staged.Date == rec.Date && staged.Exercise == rec.Exercise && staged.RM == rec.RM
}

// forgetStaged clears the staging slot when it holds one of removed, so a
// deleted estimate is not reconciled back into the history.
func (s *Storage) forgetStaged(removed []models.ExerciseRecord) error {
	latest, err := s.Latest()
	if err != nil || latest == nil {
		return err
	}
	for _, r := range removed {
		if stagedMatches(*latest, r) {
			return s.ClearLatest()
		}
	}
	return nil
}

// ReconcileLatest makes sure the staged estimate is part of the history
// before analytics read it. The staged record is prepended only when the
// history head differs from it on rm and exercise and its id is not already
// stored; the slot is cleared once the record is committed. It returns the
// history.
func (s *Storage) ReconcileLatest() ([]models.ExerciseRecord, error) {
	records, err := s.loadOneRM()
	if err != nil {
		return nil, err
	}

	latest, err := s.Latest()
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return records, nil
	}

	if len(records) > 0 && records[0].RM == latest.RM && records[0].Exercise == latest.Exercise {
		return records, s.ClearLatest()
	}
	if latest.ID != "" {
		for _, r := range records {
			if r.ID == latest.ID {
				return records, s.ClearLatest()
			}
		}
	}

	if err := validateOneRM(*latest); err != nil {
		log.Warnf("ignoring invalid staged estimate: %s", err)
		return records, nil
	}
	staged := *latest
	if staged.ID == "" {
		staged.ID = s.newID()
	}

	log.Debugf("reconciling staged %s estimate %.1f into history", staged.Exercise, staged.RM)
	updated := append([]models.ExerciseRecord{staged}, records...)
	if err := s.saveJSON(KeyHistory, updated); err != nil {
		return nil, err
	}
	if err := s.ClearLatest(); err != nil {
		log.Errorf("reconciled staged estimate but could not clear the slot: %s", err)
	}
	return updated, nil
}

// Age returns the last entered age, if one was stored and parses as an integer.
func (s *Storage) Age() (int, bool) {
	raw, err := s.kv.Get(KeyUserAge)
	if err != nil {
		if !kv.IsNotFound(err) {
			log.Errorf("load %s: %s", KeyUserAge, err)
		}
		return 0, false
	}

	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Warnf("corrupt value under %s: %q", KeyUserAge, raw)
		return 0, false
	}
	return age, true
}

func (s *Storage) SetAge(age int) error {
	if err := s.kv.Set(KeyUserAge, strconv.Itoa(age)); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyUserAge, err)
	}
	return nil
}
