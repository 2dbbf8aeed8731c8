package tracker

import (
	"io"

	"github.com/misterclayt0n/suren/internal/storage"
	log "github.com/sirupsen/logrus"
)

func (t *Tracker) Export(w io.Writer) error {
	return t.st.Export(w, t.now())
}

// Import replaces every collection with a TOML dump.
func (t *Tracker) Import(r io.Reader) (storage.Snapshot, error) {
	snap, err := t.st.Import(r)
	if err != nil {
		return storage.Snapshot{}, err
	}
	log.Debugf("imported %d records, %d zone records and %d goals", len(snap.History), len(snap.Zones), len(snap.Goals))
	return snap, nil
}
