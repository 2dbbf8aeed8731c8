package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/misterclayt0n/suren/internal/kv"
	log "github.com/sirupsen/logrus"
)

// Persisted keys.
const (
	KeyHistory     = "rmHistory"
	KeyGoals       = "rmGoals"
	KeyZoneRecords = "zoneRecords"
	KeyLatestOneRM = "latestOneRM"
	KeyUserAge     = "userAge"
)

// Storage owns the typed collections persisted in the key-value store. It
// assumes a single writer.
type Storage struct {
	kv    kv.Store
	newID func() string
}

func NewStorage(store kv.Store) *Storage {
	return &Storage{
		kv:    store,
		newID: func() string { return uuid.New().String() },
	}
}

func (s *Storage) Close() error {
	return s.kv.Close()
}

// loadJSON decodes key into dst. It reports found=false when the key is
// absent or its value cannot be parsed; only backend failures return an error.
func (s *Storage) loadJSON(key string, dst any) (bool, error) {
	raw, err := s.kv.Get(key)
	if err != nil {
		if kv.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if raw == "" || raw == "null" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Warnf("corrupt value under %s, treating as empty: %s", key, err)
		return false, nil
	}
	return true, nil
}

func (s *Storage) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
