package storage

import (
	"github.com/misterclayt0n/suren/internal/models"
	log "github.com/sirupsen/logrus"
)

func (s *Storage) loadOneRM() ([]models.ExerciseRecord, error) {
	var records []models.ExerciseRecord
	if _, err := s.loadJSON(KeyHistory, &records); err != nil {
		return nil, err
	}

	backfilled := 0
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = s.newID()
			backfilled++
		}
	}
	if backfilled > 0 {
		log.Infof("assigned ids to %d legacy 1RM records", backfilled)
		if err := s.saveJSON(KeyHistory, records); err != nil {
			log.Errorf("failed to persist backfilled ids: %s", err)
		}
	}

	if records == nil {
		records = []models.ExerciseRecord{}
	}
	return records, nil
}

// OneRMHistory returns the persisted 1RM history, newest first. Absent or
// corrupt data, and backend failures, yield an empty history.
func (s *Storage) OneRMHistory() []models.ExerciseRecord {
	records, err := s.loadOneRM()
	if err != nil {
		log.Errorf("load 1RM history: %s", err)
		return []models.ExerciseRecord{}
	}
	return records
}

// AppendOneRM validates rec, assigns an ID when missing and prepends it to
// the history.
func (s *Storage) AppendOneRM(rec models.ExerciseRecord) (models.ExerciseRecord, error) {
	if err := validateOneRM(rec); err != nil {
		return models.ExerciseRecord{}, err
	}
	if rec.ID == "" {
		rec.ID = s.newID()
	}

	records, err := s.loadOneRM()
	if err != nil {
		return models.ExerciseRecord{}, err
	}

	updated := append([]models.ExerciseRecord{rec}, records...)
	if err := s.saveJSON(KeyHistory, updated); err != nil {
		return models.ExerciseRecord{}, err
	}
	return rec, nil
}

func (s *Storage) removeOneRMWhere(match func(models.ExerciseRecord) bool) (int, error) {
	records, err := s.loadOneRM()
	if err != nil {
		return 0, err
	}

	kept := make([]models.ExerciseRecord, 0, len(records))
	var removed []models.ExerciseRecord
	for _, r := range records {
		if match(r) {
			removed = append(removed, r)
		} else {
			kept = append(kept, r)
		}
	}

	if len(removed) == 0 {
		return 0, nil
	}
	if err := s.saveJSON(KeyHistory, kept); err != nil {
		return 0, err
	}
	if err := s.forgetStaged(removed); err != nil {
		return len(removed), err
	}
	return len(removed), nil
}

// RemoveOneRM deletes the record with the given ID. A missing ID is a no-op.
func (s *Storage) RemoveOneRM(id string) (bool, error) {
	n, err := s.removeOneRMWhere(func(r models.ExerciseRecord) bool {
		return r.ID == id
	})
	return n > 0, err
}

// RemoveOneRMMatching deletes every record equal to rec on (date, exercise,
// rm), so duplicates are all removed at once. It returns how many went.
func (s *Storage) RemoveOneRMMatching(rec models.ExerciseRecord) (int, error) {
	return s.removeOneRMWhere(func(r models.ExerciseRecord) bool {
		return r.Date == rec.Date && r.Exercise == rec.Exercise && r.RM == rec.RM
	})
}
