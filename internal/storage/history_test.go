package storage

import (
	"encoding/json"
	"testing"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendOneRM_PrependsAndPersists(t *testing.T) {
	st, mem := newTestStorage(t)

	first, err := st.AppendOneRM(squat(100, "2025-05-01"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", first.ID)

	second, err := st.AppendOneRM(squat(105, "2025-05-02"))
	require.NoError(t, err)

	history := st.OneRMHistory()
	require.Len(t, history, 2)
	assert.Equal(t, second, history[0])
	assert.Equal(t, first, history[1])

	raw, err := mem.Get(KeyHistory)
	require.NoError(t, err)
	var persisted []models.ExerciseRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, history, persisted)
}

func TestAppendOneRM_KeepsGivenID(t *testing.T) {
	st, _ := newTestStorage(t)
	rec := squat(100, "2025-05-01")
	rec.ID = "mine"
	got, err := st.AppendOneRM(rec)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.ID)
}

func TestAppendOneRM_RejectsBadShape(t *testing.T) {
	st, _ := newTestStorage(t)

	bad := []func(*models.ExerciseRecord){
		func(r *models.ExerciseRecord) { r.Exercise = "  " },
		func(r *models.ExerciseRecord) { r.Weight = 0 },
		func(r *models.ExerciseRecord) { r.Reps = 0 },
		func(r *models.ExerciseRecord) { r.Unit = "stone" },
		func(r *models.ExerciseRecord) { r.Date = "yesterday" },
	}
	for _, mutate := range bad {
		rec := squat(100, "2025-05-01")
		mutate(&rec)
		_, err := st.AppendOneRM(rec)
		require.Error(t, err)
		assert.True(t, validation.Is(err))
	}
	assert.Empty(t, st.OneRMHistory())
}

func TestRemoveOneRM_ByID(t *testing.T) {
	st, _ := newTestStorage(t)
	a, _ := st.AppendOneRM(squat(100, "2025-05-01"))
	b, _ := st.AppendOneRM(squat(100, "2025-05-01")) // same date, exercise, rm

	removed, err := st.RemoveOneRM(a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	history := st.OneRMHistory()
	require.Len(t, history, 1)
	assert.Equal(t, b.ID, history[0].ID)

	removed, err = st.RemoveOneRM("does-not-exist")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, st.OneRMHistory(), 1)
}

func TestRemoveOneRMMatching_RemovesEveryStructuralMatch(t *testing.T) {
	st, _ := newTestStorage(t)
	_, _ = st.AppendOneRM(squat(100, "2025-05-01"))
	other, _ := st.AppendOneRM(squat(110, "2025-05-01"))
	dup := squat(100, "2025-05-01")
	dup.Weight = 90 // weight and reps are not part of the match
	dup.Reps = 3
	_, _ = st.AppendOneRM(dup)

	n, err := st.RemoveOneRMMatching(squat(100, "2025-05-01"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	history := st.OneRMHistory()
	require.Len(t, history, 1)
	assert.Equal(t, other.ID, history[0].ID)

	n, err = st.RemoveOneRMMatching(squat(999, "2025-05-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestOneRMHistory_BackfillsLegacyIDs(t *testing.T) {
	st, mem := newTestStorage(t)
	legacy := `[{"exercise":"Squat","weight":100,"reps":5,"rm":116.7,"date":"2025-05-01","unit":"kg"}]`
	require.NoError(t, mem.Set(KeyHistory, legacy))

	history := st.OneRMHistory()
	require.Len(t, history, 1)
	assert.Equal(t, "id-1", history[0].ID)

	// ids are written back so they stay stable
	again := st.OneRMHistory()
	assert.Equal(t, "id-1", again[0].ID)

	removed, err := st.RemoveOneRM("id-1")
	require.NoError(t, err)
	assert.True(t, removed)
}
