package storage

import (
	"github.com/misterclayt0n/suren/internal/models"
	log "github.com/sirupsen/logrus"
)

func (s *Storage) loadZones() ([]models.ZoneRecord, error) {
	var records []models.ZoneRecord
	if _, err := s.loadJSON(KeyZoneRecords, &records); err != nil {
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
		log.Infof("assigned ids to %d legacy zone records", backfilled)
		if err := s.saveJSON(KeyZoneRecords, records); err != nil {
			log.Errorf("failed to persist backfilled ids: %s", err)
		}
	}

	if records == nil {
		records = []models.ZoneRecord{}
	}
	return records, nil
}

// ZoneHistory returns the persisted zone records, newest first.
func (s *Storage) ZoneHistory() []models.ZoneRecord {
	records, err := s.loadZones()
	if err != nil {
		log.Errorf("load zone history: %s", err)
		return []models.ZoneRecord{}
	}
	return records
}

func (s *Storage) AppendZone(rec models.ZoneRecord) (models.ZoneRecord, error) {
	if err := validateZone(rec); err != nil {
		return models.ZoneRecord{}, err
	}
	if rec.ID == "" {
		rec.ID = s.newID()
	}

	records, err := s.loadZones()
	if err != nil {
		return models.ZoneRecord{}, err
	}

	updated := append([]models.ZoneRecord{rec}, records...)
	if err := s.saveJSON(KeyZoneRecords, updated); err != nil {
		return models.ZoneRecord{}, err
	}
	return rec, nil
}

// RemoveZone deletes the zone record with the given ID. A missing ID is a no-op.
func (s *Storage) RemoveZone(id string) (bool, error) {
	records, err := s.loadZones()
	if err != nil {
		return false, err
	}

	for i, r := range records {
		if r.ID == id {
			return true, s.saveZones(append(records[:i:i], records[i+1:]...))
		}
	}
	return false, nil
}

// RemoveZoneAt deletes the record at index in the persisted, newest-first
// ordering. Indexes from a filtered view do not line up with this ordering;
// use RemoveZone for those. Out of range is a no-op.
func (s *Storage) RemoveZoneAt(index int) (bool, error) {
	records, err := s.loadZones()
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(records) {
		return false, nil
	}
	return true, s.saveZones(append(records[:index:index], records[index+1:]...))
}

func (s *Storage) saveZones(records []models.ZoneRecord) error {
	return s.saveJSON(KeyZoneRecords, records)
}
