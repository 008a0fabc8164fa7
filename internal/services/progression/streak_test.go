package progression

import (
	"testing"
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 5, d, 23, 30, 0, 0, time.UTC)
}

func TestApplyStreakFirstParty(t *testing.T) {
	p := &models.Profile{UserID: "user-1"}

	applyStreak(p, day(1))

	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, 1, p.LongestStreak)
	assert.Equal(t, "2026-05-01", p.LastStreakDate)
}

func TestApplyStreakSameDayIsIdempotent(t *testing.T) {
	p := &models.Profile{UserID: "user-1"}

	applyStreak(p, day(1))
	applyStreak(p, day(1).Add(2*time.Hour))

	assert.Equal(t, 1, p.CurrentStreak)
}

func TestApplyStreakConsecutiveDays(t *testing.T) {
	p := &models.Profile{UserID: "user-1"}

	for d := 1; d <= 4; d++ {
		applyStreak(p, day(d))
	}

	assert.Equal(t, 4, p.CurrentStreak)
	assert.Equal(t, 4, p.LongestStreak)
}

func TestApplyStreakGapResets(t *testing.T) {
	p := &models.Profile{UserID: "user-1"}

	applyStreak(p, day(1))
	applyStreak(p, day(2))
	applyStreak(p, day(5))

	assert.Equal(t, 1, p.CurrentStreak)
	// High-water mark survives the reset
	assert.Equal(t, 2, p.LongestStreak)
	assert.Equal(t, "2026-05-05", p.LastStreakDate)
}

func TestApplyStreakBackfilledPartyLeavesStreak(t *testing.T) {
	p := &models.Profile{UserID: "user-1"}

	applyStreak(p, day(10))
	applyStreak(p, day(11))
	applyStreak(p, day(3))

	assert.Equal(t, 2, p.CurrentStreak)
	assert.Equal(t, "2026-05-11", p.LastStreakDate)
}
