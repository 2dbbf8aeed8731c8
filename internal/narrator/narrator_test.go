package narrator

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/misterclayt0n/suren/internal/analytics"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPicker int

func (f fixedPicker) IntN(n int) int { return int(f) % n }

func TestMessage_DrawsFromTrendPool(t *testing.T) {
	n := New(rand.New(rand.NewPCG(1, 2)))

	for _, trend := range []models.Trend{models.TrendProgress, models.TrendStable, models.TrendRegressing} {
		pool := Pool(trend)
		require.Len(t, pool, 3)
		for i := 0; i < 50; i++ {
			msg := n.Message("Squat", trend)
			require.True(t, strings.HasPrefix(msg, "Squat: "), msg)
			assert.Contains(t, pool, strings.TrimPrefix(msg, "Squat: "))
		}
	}
}

func TestMessage_UnknownTrend(t *testing.T) {
	assert.Equal(t, "", New(nil).Message("Squat", models.Trend("Sideways")))
}

func TestMessage_FixedPicker(t *testing.T) {
	n := New(fixedPicker(1))
	assert.Equal(t, "Bench Press: Great work! You're making gains.", n.Message("Bench Press", models.TrendProgress))
	assert.Equal(t, "Deadlift: Regression detected rest or adjust your plan.", n.Message("Deadlift", models.TrendRegressing))
}

func TestPool_ReturnsCopy(t *testing.T) {
	p := Pool(models.TrendStable)
	p[0] = "changed"
	assert.Equal(t, "Performance is consistent. Stay focused!", Pool(models.TrendStable)[0])
	assert.Empty(t, Pool(models.Trend("")))
}

func TestNotes(t *testing.T) {
	n := New(fixedPicker(0))
	notes := n.Notes([]analytics.ExerciseTrend{
		{Exercise: "Bench Press", Trend: models.TrendStable},
		{Exercise: "Squat", Trend: models.TrendProgress},
	})
	assert.Equal(t, []Note{
		{Exercise: "Bench Press", Trend: models.TrendStable, Message: "Bench Press: Performance is consistent. Stay focused!"},
		{Exercise: "Squat", Trend: models.TrendProgress, Message: "Squat: Steady improvement in recent weeks."},
	}, notes)
}
