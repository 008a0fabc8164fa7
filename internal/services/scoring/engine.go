package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
)

// Signals are self-reported facts about a party that the party record
// itself cannot capture. The engine trusts them as-is.
type Signals struct {
	// HelpedFriends counts friends the user helped get home safe
	HelpedFriends int

	// IsNewVenue reports a first visit to the venue
	IsNewVenue bool

	// CulturalExperience reports a cultural discovery during the night
	CulturalExperience bool

	// IsOrganizer reports the user organized the event
	IsOrganizer bool

	// IncludedNewPeople reports the group welcomed newcomers
	IncludedNewPeople bool

	// GroupActivities counts games or activities the user animated
	GroupActivities int

	// ConsistencyScore rates pacing regularity, 0 to 100
	ConsistencyScore int

	// AdaptedToContext reports drinking adapted to the venue
	AdaptedToContext bool

	// IsPersonalRecord reports the longest night so far
	IsPersonalRecord bool

	// MadeOthersDance reports the user got the crowd moving
	MadeOthersDance bool
}

// Breakdown maps scoring category to points awarded, one entry per
// category that fired.
type Breakdown map[string]int

// Total sums the breakdown.
func (b Breakdown) Total() int {
	total := 0
	for _, points := range b {
		total += points
	}
	return total
}

// fallbackGapMinutes is assumed when fewer than two drinks carry
// timestamps.
const fallbackGapMinutes = 45.0

var nonAlcoholicMarkers = []string{"eau", "soda", "jus"}

// Score runs one mode's rules over a finalized party. The result
// depends only on the arguments.
func Score(mode models.GameMode, party *models.Party, signals *Signals) Breakdown {
	if signals == nil {
		signals = &Signals{}
	}

	switch mode {
	case models.GameModeModeration:
		return scoreModeration(party, signals)
	case models.GameModeExplorer:
		return scoreExplorer(party, signals)
	case models.GameModeSocial:
		return scoreSocial(party, signals)
	case models.GameModeBalanced:
		return scoreBalanced(party, signals)
	case models.GameModeParty:
		return scoreParty(party, signals)
	default:
		return Breakdown{}
	}
}

func scoreModeration(p *models.Party, sig *Signals) Breakdown {
	b := Breakdown{}
	drinks := p.TotalDrinks()

	if drinks >= 2 && averageGapMinutes(p) >= 30 {
		b["timeBetweenDrinks"] = 10 * (drinks - 1)
	}

	if soft := nonAlcoholicCount(p); soft > 0 {
		b["waterIntake"] = soft * 5
	}

	switch strings.ToLower(p.TransportMode) {
	case "uber", "taxi", "friend", "metro":
		b["responsiblePlanning"] = 20
	}

	if sig.HelpedFriends > 0 {
		b["helpingFriends"] = sig.HelpedFriends * 15
	}

	if float64(drinks)/durationHours(p) <= 1 {
		b["moderationBonus"] = 25
	}

	return b
}

func scoreExplorer(p *models.Party, sig *Signals) Breakdown {
	b := Breakdown{}

	if labels := distinctLabels(p); labels > 0 {
		b["newDrinks"] = labels * 25
	}

	if sig.IsNewVenue {
		b["newVenues"] = 20
	}

	if len(p.Photos) > 0 {
		points := len(p.Photos) * 15
		if points > 60 {
			points = 60
		}
		b["creativePhotos"] = points
	}

	if len(p.Description) > 50 {
		b["detailedReviews"] = 10
	}

	if distinctTypes(p) >= 3 {
		b["diversityBonus"] = 30
	}

	if sig.CulturalExperience {
		b["culturalDiscovery"] = 20
	}

	return b
}

func scoreSocial(p *models.Party, sig *Signals) Breakdown {
	b := Breakdown{}

	if sig.IsOrganizer {
		b["eventsOrganized"] = 50
	}

	if len(p.Companions) > 0 {
		b["friendsGathered"] = len(p.Companions) * 5
	}

	switch strings.ToLower(p.Mood) {
	case "excellent", "great", "good":
		b["moodBoost"] = 10
	}

	if len(p.Photos) > 0 || p.Description != "" {
		b["memoriesShared"] = 15
	}

	if sig.IncludedNewPeople {
		b["socialInclusion"] = 25
	}

	if sig.GroupActivities > 0 {
		b["groupAnimation"] = sig.GroupActivities * 10
	}

	return b
}

func scoreBalanced(p *models.Party, sig *Signals) Breakdown {
	b := Breakdown{}
	drinks := p.TotalDrinks()
	hours := durationHours(p)

	if ratio := float64(drinks) / hours; ratio >= 0.5 && ratio <= 1.5 {
		b["balanceRatio"] = 15
	}

	variety := 0
	if drinks > 0 {
		variety += 3
	}
	if len(p.Photos) > 0 {
		variety += 3
	}
	if len(p.Companions) > 0 {
		variety += 3
	}
	if strings.TrimSpace(p.Location) != "" {
		variety += 3
	}
	if variety > 0 {
		b["varietyScore"] = variety
	}

	if sig.ConsistencyScore >= 80 {
		b["consistency"] = 18
	}

	if sig.AdaptedToContext {
		b["socialAdaptability"] = 10
	}

	if float64(drinks) <= hours && distinctTypes(p) >= 2 && len(p.Companions) >= 1 {
		b["perfectBalanceBonus"] = 25
	}

	return b
}

func scoreParty(p *models.Party, sig *Signals) Breakdown {
	b := Breakdown{}
	drinks := p.TotalDrinks()
	hours := durationHours(p)

	if drinks > 0 {
		b["volumePoints"] = drinks * 8
	}

	if hours >= 4 {
		b["enduranceBonus"] = 25
	}
	if hours >= 8 {
		b["marathonBonus"] = 40
	}

	if creative := creativeCount(p); creative > 0 {
		b["creativeMixes"] = creative * 20
	}

	if strings.ToLower(p.Mood) == "excellent" && len(p.Photos) > 0 {
		b["partyEnergy"] = 15
	}

	if sig.IsPersonalRecord {
		b["longestStreak"] = 30
	}

	if sig.MadeOthersDance || len(p.Companions) >= 3 {
		b["crowdPleaser"] = 12
	}

	if alcoholTypes(p) >= 3 {
		b["varietyAlcoholBonus"] = 25
	}

	if drinks >= 5 && averageGapMinutes(p) <= 45 {
		b["steadyPaceBonus"] = 20
	}

	if drinks >= 6 && hours >= 5 && len(p.Companions) >= 2 && len(p.Photos) >= 2 {
		b["epicNightBonus"] = 50
	}

	return b
}

// averageGapMinutes is the mean gap between consecutive drink entry
// timestamps. Entries without a timestamp are skipped; with fewer
// than two left the fallback gap applies.
func averageGapMinutes(p *models.Party) float64 {
	var stamps []time.Time
	for _, d := range p.Drinks {
		if !d.AddedAt.IsZero() {
			stamps = append(stamps, d.AddedAt)
		}
	}

	if len(stamps) < 2 {
		return fallbackGapMinutes
	}

	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	total := stamps[len(stamps)-1].Sub(stamps[0])
	return total.Minutes() / float64(len(stamps)-1)
}

// durationHours is the party length in hours. Explicit start and end
// times win; otherwise the length is estimated from how much was
// drunk.
func durationHours(p *models.Party) float64 {
	if !p.StartTime.IsZero() && p.EndTime.After(p.StartTime) {
		return p.EndTime.Sub(p.StartTime).Hours()
	}

	switch drinks := p.TotalDrinks(); {
	case drinks <= 2:
		return 2
	case drinks <= 4:
		return 3
	default:
		return 4
	}
}

func isNonAlcoholic(d *models.DrinkEntry) bool {
	label := strings.ToLower(d.Type + " " + d.Brand)
	for _, marker := range nonAlcoholicMarkers {
		if strings.Contains(label, marker) {
			return true
		}
	}
	return false
}

func nonAlcoholicCount(p *models.Party) int {
	count := 0
	for _, d := range p.Drinks {
		if isNonAlcoholic(d) {
			count += d.Quantity
		}
	}
	return count
}

// distinctLabels counts distinct drinks by brand when known, type
// otherwise.
func distinctLabels(p *models.Party) int {
	seen := make(map[string]bool)
	for _, d := range p.Drinks {
		label := d.Brand
		if label == "" {
			label = d.Type
		}
		seen[strings.ToLower(label)] = true
	}
	return len(seen)
}

func distinctTypes(p *models.Party) int {
	seen := make(map[string]bool)
	for _, d := range p.Drinks {
		seen[d.Type] = true
	}
	return len(seen)
}

func alcoholTypes(p *models.Party) int {
	seen := make(map[string]bool)
	for _, d := range p.Drinks {
		if !isNonAlcoholic(d) {
			seen[d.Type] = true
		}
	}
	return len(seen)
}

func creativeCount(p *models.Party) int {
	count := 0
	for _, d := range p.Drinks {
		label := strings.ToLower(d.Type + " " + d.Brand)
		if strings.Contains(label, "mix") || strings.Contains(label, "cocktail") || strings.Contains(label, "shot") {
			count += d.Quantity
		}
	}
	return count
}
