package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForSpend(t *testing.T) {
	assert.Equal(t, 0.0, TierForSpend(0))
	assert.Equal(t, 0.0, TierForSpend(499999))
	assert.Equal(t, 500000.0, TierForSpend(500000))
	assert.Equal(t, 500000.0, TierForSpend(999999))
	assert.Equal(t, 1000000.0, TierForSpend(1500000))
	assert.Equal(t, 2000000.0, TierForSpend(5000000))
}

func TestTierName(t *testing.T) {
	assert.Equal(t, "", TierName(0))
	assert.Equal(t, "Bạc", TierName(500000))
	assert.Equal(t, "Vàng", TierName(1000000))
	assert.Equal(t, "Kim Cương", TierName(2000000))
}

func TestNextTier(t *testing.T) {
	next := NextTier(0)
	assert.NotNil(t, next)
	assert.Equal(t, 500000.0, next.Threshold)

	next = NextTier(500000)
	assert.NotNil(t, next)
	assert.Equal(t, 1000000.0, next.Threshold)

	assert.Nil(t, NextTier(2000000))
}

func TestTierProgress(t *testing.T) {
	remaining, percent := TierProgress(250000)
	assert.Equal(t, 250000.0, remaining)
	assert.Equal(t, 50.0, percent)

	remaining, percent = TierProgress(500000)
	assert.Equal(t, 500000.0, remaining)
	assert.Equal(t, 50.0, percent)

	// top tier held
	remaining, percent = TierProgress(3000000)
	assert.Equal(t, 0.0, remaining)
	assert.Equal(t, 100.0, percent)
}

func TestCrossedTiers(t *testing.T) {
	crossed := CrossedTiers(0, 250000)
	assert.Empty(t, crossed)

	crossed = CrossedTiers(400000, 500000)
	assert.Len(t, crossed, 1)
	assert.Equal(t, "Bạc", crossed[0].Name)
	assert.Equal(t, 20000.0, crossed[0].Discount)

	// one large order can unlock several tiers at once
	crossed = CrossedTiers(0, 2200000)
	assert.Len(t, crossed, 3)
	assert.Equal(t, 80000.0, crossed[2].Discount)

	// already-held tiers are not re-granted
	crossed = CrossedTiers(600000, 1200000)
	assert.Len(t, crossed, 1)
	assert.Equal(t, "Vàng", crossed[0].Name)
}
