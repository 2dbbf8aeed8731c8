package storage

import (
	"testing"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoneRec(hr int, date string) models.ZoneRecord {
	return models.ZoneRecord{Date: date, Age: 30, HeartRate: hr, Zone: "Zone 2"}
}

func TestAppendZone(t *testing.T) {
	st, _ := newTestStorage(t)

	a, err := st.AppendZone(zoneRec(120, "2025-05-01"))
	require.NoError(t, err)
	b, err := st.AppendZone(zoneRec(125, "2025-05-02"))
	require.NoError(t, err)

	zones := st.ZoneHistory()
	require.Len(t, zones, 2)
	assert.Equal(t, b, zones[0])
	assert.Equal(t, a, zones[1])
}

func TestAppendZone_RejectsBadShape(t *testing.T) {
	st, _ := newTestStorage(t)

	rec := zoneRec(120, "2025-05-01")
	rec.Age = 0
	_, err := st.AppendZone(rec)
	assert.True(t, validation.Is(err))

	rec = zoneRec(0, "2025-05-01")
	_, err = st.AppendZone(rec)
	assert.True(t, validation.Is(err))

	rec = zoneRec(120, "")
	_, err = st.AppendZone(rec)
	assert.True(t, validation.Is(err))

	assert.Empty(t, st.ZoneHistory())
}

func TestRemoveZone_ByID(t *testing.T) {
	st, _ := newTestStorage(t)
	a, _ := st.AppendZone(zoneRec(120, "2025-05-01"))
	b, _ := st.AppendZone(zoneRec(120, "2025-05-01"))
	c, _ := st.AppendZone(zoneRec(120, "2025-05-01"))

	removed, err := st.RemoveZone(b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	zones := st.ZoneHistory()
	require.Len(t, zones, 2)
	assert.Equal(t, c.ID, zones[0].ID)
	assert.Equal(t, a.ID, zones[1].ID)

	removed, err = st.RemoveZone(b.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveZoneAt(t *testing.T) {
	st, _ := newTestStorage(t)
	a, _ := st.AppendZone(zoneRec(110, "2025-05-01"))
	_, _ = st.AppendZone(zoneRec(120, "2025-05-02"))
	c, _ := st.AppendZone(zoneRec(130, "2025-05-03"))

	// index 1 of the persisted newest-first ordering
	removed, err := st.RemoveZoneAt(1)
	require.NoError(t, err)
	assert.True(t, removed)

	zones := st.ZoneHistory()
	require.Len(t, zones, 2)
	assert.Equal(t, c.ID, zones[0].ID)
	assert.Equal(t, a.ID, zones[1].ID)

	for _, idx := range []int{-1, 2, 10} {
		removed, err = st.RemoveZoneAt(idx)
		require.NoError(t, err)
		assert.False(t, removed)
	}
	assert.Len(t, st.ZoneHistory(), 2)
}
