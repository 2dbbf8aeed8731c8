package storage

import (
	"math"
	"testing"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoals(t *testing.T) {
	st, _ := newTestStorage(t)

	_, ok := st.Goal("Squat")
	assert.False(t, ok)

	require.NoError(t, st.SetGoal("Squat", 140))
	require.NoError(t, st.SetGoal("Bench Press", 100))
	require.NoError(t, st.SetGoal("Squat", 150))

	g, ok := st.Goal("Squat")
	require.True(t, ok)
	assert.Equal(t, 150.0, g)
	assert.Equal(t, models.GoalMap{"Squat": 150, "Bench Press": 100}, st.Goals())

	require.NoError(t, st.DeleteGoal("Squat"))
	_, ok = st.Goal("Squat")
	assert.False(t, ok)

	// deleting an absent goal is not an error
	require.NoError(t, st.DeleteGoal("Squat"))
	assert.Equal(t, models.GoalMap{"Bench Press": 100}, st.Goals())
}

func TestSetGoal_Rejects(t *testing.T) {
	st, _ := newTestStorage(t)
	require.NoError(t, st.SetGoal("Squat", 140))

	for _, v := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		err := st.SetGoal("Squat", v)
		require.Error(t, err)
		assert.True(t, validation.Is(err))
	}
	err := st.SetGoal("", 100)
	assert.True(t, validation.Is(err))

	assert.Equal(t, models.GoalMap{"Squat": 140}, st.Goals())
}
