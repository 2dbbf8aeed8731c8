package utils

import (
	"testing"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateEpley1RM(t *testing.T) {
	assert.InDelta(t, 116.6667, CalculateEpley1RM(100, 5), 0.0001)
	assert.Equal(t, 0.0, CalculateEpley1RM(100, 0))
	assert.Equal(t, 0.0, CalculateEpley1RM(100, -3))
}

func TestEstimate1RM(t *testing.T) {
	assert.Equal(t, 116.7, Estimate1RM(100, 5, models.UnitKG))
	assert.Equal(t, Round1(100*(1+5.0/30)*KgToLb), Estimate1RM(100, 5, models.UnitLB))
	assert.Equal(t, 257.2, Estimate1RM(100, 5, models.UnitLB))
	assert.Equal(t, 62.0, Estimate1RM(60, 1, models.UnitKG))
	assert.Equal(t, 140.0, Estimate1RM(105, 10, models.UnitKG))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.2, Round1(1.234))
	assert.Equal(t, 1.3, Round1(1.25))
	assert.Equal(t, 10.0, Round1(9.96))
}

func TestRaw1RM_IsUnrounded(t *testing.T) {
	assert.InDelta(t, 116.6667, Raw1RM(100, 5, models.UnitKG), 1e-4)
	assert.InDelta(t, 116.6667*KgToLb, Raw1RM(100, 5, models.UnitLB), 1e-3)
	assert.Equal(t, Round1(Raw1RM(100, 5, models.UnitKG)), Estimate1RM(100, 5, models.UnitKG))
}
