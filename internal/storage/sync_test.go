package storage

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	src, _ := newTestStorage(t)
	_, _ = src.AppendOneRM(squat(100, "2025-05-01"))
	_, _ = src.AppendOneRM(squat(110, "2025-05-03"))
	_, _ = src.AppendZone(zoneRec(120, "2025-05-02"))
	require.NoError(t, src.SetGoal("Squat", 105))
	require.NoError(t, src.SetGoal("Bench Press", 90))
	require.NoError(t, src.SetAge(30))

	var buf bytes.Buffer
	now := time.Date(2025, 5, 4, 10, 0, 0, 0, time.UTC)
	require.NoError(t, src.Export(&buf, now))
	assert.Contains(t, buf.String(), "[[history]]")
	assert.Contains(t, buf.String(), "[[zone]]")

	dst, _ := newTestStorage(t)
	_, _ = dst.AppendOneRM(squat(50, "2024-01-01")) // replaced by the import
	snap, err := dst.Import(&buf)
	require.NoError(t, err)
	assert.True(t, now.Equal(snap.ExportedAt))

	assert.Equal(t, src.OneRMHistory(), dst.OneRMHistory())
	assert.Equal(t, src.ZoneHistory(), dst.ZoneHistory())
	assert.Equal(t, src.Goals(), dst.Goals())
	age, ok := dst.Age()
	require.True(t, ok)
	assert.Equal(t, 30, age)
}

func TestImport_AssignsMissingIDs(t *testing.T) {
	st, _ := newTestStorage(t)
	dump := `
[goals]
Squat = 120.0

[[history]]
exercise = "Squat"
weight = 100.0
reps = 5
rm = 116.7
date = "2025-05-01"
unit = "kg"
`
	_, err := st.Import(strings.NewReader(dump))
	require.NoError(t, err)

	history := st.OneRMHistory()
	require.Len(t, history, 1)
	assert.Equal(t, "id-1", history[0].ID)
	assert.Equal(t, models.GoalMap{"Squat": 120}, st.Goals())
	assert.Empty(t, st.ZoneHistory())
}

func TestImport_RejectsInvalidDumpWithoutWriting(t *testing.T) {
	st, _ := newTestStorage(t)
	_, _ = st.AppendOneRM(squat(100, "2025-05-01"))

	dump := `
[goals]
Squat = -1.0

[[history]]
exercise = "Squat"
weight = 0.0
reps = 5
rm = 116.7
date = "2025-05-01"
unit = "kg"

[[zone]]
date = "2025-05-01"
age = 30
heart_rate = 0
zone = "Zone 2"
`
	_, err := st.Import(strings.NewReader(dump))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history[0]")
	assert.Contains(t, err.Error(), "zone[0]")
	assert.Contains(t, err.Error(), "goal Squat")

	assert.Len(t, st.OneRMHistory(), 1)
	assert.Empty(t, st.Goals())
}

func TestImport_ClearsStagedEstimate(t *testing.T) {
	st, _ := newTestStorage(t)
	require.NoError(t, st.SetLatest(squat(150, "2025-05-01")))

	_, err := st.Import(strings.NewReader("exported_at = 2025-05-20T00:00:00Z\n"))
	require.NoError(t, err)

	latest, err := st.Latest()
	require.NoError(t, err)
	assert.Nil(t, latest)
	history, err := st.ReconcileLatest()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestImport_BadTOML(t *testing.T) {
	st, _ := newTestStorage(t)
	_, err := st.Import(strings.NewReader("[[history"))
	assert.Error(t, err)
}
