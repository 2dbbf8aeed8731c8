package utils

import (
	"testing"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyZone(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		heartRate int
		want      string
	}{
		{"lower bound of zone 1 is inclusive", 30, 95, "Zone 1"},
		{"upper bound of zone 2 belongs to zone 3", 30, 133, "Zone 3"},
		{"inside zone 2", 30, 120, "Zone 2"},
		{"zone 4", 30, 160, "Zone 4"},
		{"zone 5", 30, 189, "Zone 5"},
		{"max heart rate is out of range", 30, 190, models.ZoneOutOfRange},
		{"below zone 1", 30, 94, models.ZoneOutOfRange},
		{"age beyond max heart rate", 230, 100, models.ZoneOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyZone(tt.age, tt.heartRate)
			assert.Equal(t, tt.want, c.Zone)
		})
	}
}

func TestClassifyZone_Ranges(t *testing.T) {
	c := ClassifyZone(30, 120)
	assert.Equal(t, 190, c.MaxHR)
	require.Len(t, c.Ranges, 5)

	z2, ok := c.Range("Zone 2")
	require.True(t, ok)
	assert.Equal(t, 114.0, z2.Min)
	assert.Equal(t, 133.0, z2.Max)

	z5, ok := c.Range("Zone 5")
	require.True(t, ok)
	assert.Equal(t, 171.0, z5.Min)
	assert.Equal(t, 190.0, z5.Max)

	_, ok = c.Range("Zone 6")
	assert.False(t, ok)

	for i := 1; i < len(c.Ranges); i++ {
		assert.Equal(t, c.Ranges[i-1].Max, c.Ranges[i].Min, "zones must be contiguous")
	}
}
