package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalXP(t *testing.T) {
	assert.Equal(t, 0, TotalXP(0, 0, 0, 0))
	assert.Equal(t, 50, TotalXP(1, 0, 0, 0))
	assert.Equal(t, 50+5*10+100*2+25, TotalXP(1, 10, 2, 1))
}

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(1))
	assert.Equal(t, 100, XPForLevel(2))
	assert.Equal(t, 300, XPForLevel(3))
	assert.Equal(t, 600, XPForLevel(4))
	assert.Equal(t, 4500, XPForLevel(10))
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(99))
	assert.Equal(t, 2, LevelForXP(100))
	assert.Equal(t, 2, LevelForXP(299))
	assert.Equal(t, 3, LevelForXP(300))
	assert.Equal(t, 10, LevelForXP(4500))
	assert.Equal(t, 1, LevelForXP(-50))
}

func TestLevelForXPMatchesThresholds(t *testing.T) {
	// Exactly at a threshold you are that level; one XP short you are
	// the level below.
	for level := 2; level <= 60; level++ {
		threshold := XPForLevel(level)
		assert.Equal(t, level, LevelForXP(threshold))
		assert.Equal(t, level-1, LevelForXP(threshold-1))
	}
}

func TestLevelForXPIsMonotonic(t *testing.T) {
	previous := 1
	for xp := 0; xp <= 20000; xp += 37 {
		level := LevelForXP(xp)
		assert.GreaterOrEqual(t, level, previous)
		previous = level
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "Novice", LevelName(1))
	assert.Equal(t, "Habitué", LevelName(3))
	assert.Equal(t, "Dieu de la Fête", LevelName(10))
	assert.Equal(t, "Dieu de la Fête Niveau 15", LevelName(15))
	assert.Equal(t, "Titan Niveau 30", LevelName(30))
	assert.Equal(t, "Déité Niveau 51", LevelName(51))
}

func TestComputeLevelInfo(t *testing.T) {
	info := ComputeLevelInfo(150)

	assert.Equal(t, 2, info.Level)
	assert.Equal(t, "Apprenti", info.LevelName)
	assert.Equal(t, 150, info.CurrentXP)
	assert.Equal(t, 300, info.NextLevelXP)
	assert.InDelta(t, 25.0, info.Progress, 0.01)
}

func TestComputeLevelInfoProgressBounds(t *testing.T) {
	for xp := 0; xp <= 20000; xp += 113 {
		info := ComputeLevelInfo(xp)
		assert.GreaterOrEqual(t, info.Progress, 0.0)
		assert.LessOrEqual(t, info.Progress, 100.0)
		assert.Greater(t, info.NextLevelXP, xp)
	}
}
