package stats

import (
	"fmt"
	"math"
)

// XP awards per achievement.
const (
	XPPerParty     = 50
	XPPerDrink     = 5
	XPPerBadge     = 100
	XPPerChallenge = 25
)

var levelNames = []string{
	"Novice",
	"Apprenti",
	"Habitué",
	"Connaisseur",
	"Expert",
	"Vétéran",
	"Maître",
	"Champion",
	"Légende",
	"Dieu de la Fête",
}

// LevelInfo describes where a user sits on the progression curve.
type LevelInfo struct {
	// Level is the current level, starting at 1
	Level int

	// LevelName is the display name for the level
	LevelName string

	// CurrentXP is the user's total XP
	CurrentXP int

	// NextLevelXP is the total XP required to reach the next level
	NextLevelXP int

	// Progress is the percentage toward the next level, in [0, 100]
	Progress float64
}

// TotalXP computes a user's XP from their lifetime achievements.
func TotalXP(parties, drinks, badges, challenges int) int {
	return parties*XPPerParty + drinks*XPPerDrink + badges*XPPerBadge + challenges*XPPerChallenge
}

// XPForLevel returns the total XP needed to reach a level. The curve
// is quadratic: each level costs 100 XP more than the one before it.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 50 * level * (level - 1)
}

// LevelForXP returns the level reached with a given total XP. Levels
// start at 1 and never decrease as XP grows.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}

	level := int((1 + math.Sqrt(1+float64(xp)/12.5)) / 2)
	for XPForLevel(level+1) <= xp {
		level++
	}
	for level > 1 && XPForLevel(level) > xp {
		level--
	}
	return level
}

// LevelName returns the display name for a level.
func LevelName(level int) string {
	switch {
	case level <= 10:
		if level < 1 {
			level = 1
		}
		return levelNames[level-1]
	case level <= 25:
		return fmt.Sprintf("Dieu de la Fête Niveau %d", level)
	case level <= 50:
		return fmt.Sprintf("Titan Niveau %d", level)
	default:
		return fmt.Sprintf("Déité Niveau %d", level)
	}
}

// ComputeLevelInfo derives the full progression snapshot for a total
// XP amount.
func ComputeLevelInfo(xp int) LevelInfo {
	level := LevelForXP(xp)
	floor := XPForLevel(level)
	next := XPForLevel(level + 1)

	progress := float64(xp-floor) / float64(next-floor) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return LevelInfo{
		Level:       level,
		LevelName:   LevelName(level),
		CurrentXP:   xp,
		NextLevelXP: next,
		Progress:    progress,
	}
}
