package cmd

import (
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 100))
	assert.Equal(t, "", bar(10, 0))
	assert.Equal(t, barWidth, utf8.RuneCountInString(bar(100, 100)))
	assert.Equal(t, barWidth/2, utf8.RuneCountInString(bar(50, 100)))
	assert.Equal(t, 1, utf8.RuneCountInString(bar(0.1, 100)), "tiny values still show")
	assert.Equal(t, barWidth, utf8.RuneCountInString(bar(300, 100)))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab  ", centerText("ab", 6))
	assert.Equal(t, " 스쿼트  ", centerText("스쿼트", 6))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}

func TestUserError(t *testing.T) {
	err := userError(validation.New("weight", "enter a weight greater than zero"))
	assert.EqualError(t, err, "invalid weight: enter a weight greater than zero")

	other := errors.New("disk full")
	assert.Equal(t, other, userError(other))
}

func TestFilterExercise(t *testing.T) {
	records := []models.ExerciseRecord{{Exercise: "Squat"}, {Exercise: "Deadlift"}, {Exercise: "스쿼트"}}
	assert.Len(t, filterExercise(records, "squat "), 0, "names are not case folded")
	assert.Len(t, filterExercise(records, "스쿼트"), 2)
}

func TestDayInMonth(t *testing.T) {
	day, ok := dayInMonth("2025-05-06", 2025, time.May)
	assert.True(t, ok)
	assert.Equal(t, 6, day)

	_, ok = dayInMonth("2025-06-06", 2025, time.May)
	assert.False(t, ok)
	_, ok = dayInMonth("garbage", 2025, time.May)
	assert.False(t, ok)
}

func TestZonePositions_FollowFullListing(t *testing.T) {
	all := []models.ZoneRecord{{ID: "c"}, {ID: "b"}, {ID: "a"}}
	shown := []models.ZoneRecord{{ID: "b"}, {ID: "a"}}

	assert.Equal(t, []int{2, 3}, zonePositions(all, shown))
	assert.Equal(t, []int{1, 2, 3}, zonePositions(all, all))
	assert.Empty(t, zonePositions(all, nil))
}
