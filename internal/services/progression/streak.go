package progression

import (
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
)

// streakDateLayout is the calendar-day format stored on the profile.
const streakDateLayout = "2006-01-02"

// applyStreak advances the consecutive-party-day streak for a party
// that ended at the given time. Two parties on the same calendar day
// count once; a one-day gap extends the streak; anything longer
// resets it to one. The longest streak is a high-water mark and never
// decreases.
func applyStreak(p *models.Profile, partyEnd time.Time) {
	day := partyEnd.Format(streakDateLayout)

	switch {
	case p.LastStreakDate == day:
		// Second party of the same day, nothing to do
	case p.LastStreakDate == "":
		p.CurrentStreak = 1
	default:
		last, err := time.Parse(streakDateLayout, p.LastStreakDate)
		if err != nil {
			p.CurrentStreak = 1
			break
		}

		current, _ := time.Parse(streakDateLayout, day)
		gap := int(current.Sub(last).Hours() / 24)

		switch {
		case gap == 1:
			p.CurrentStreak++
		case gap > 1:
			p.CurrentStreak = 1
		}
		// gap <= 0 means a backfilled party, leave the streak alone
	}

	if p.LastStreakDate < day || p.LastStreakDate == "" {
		p.LastStreakDate = day
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
}
