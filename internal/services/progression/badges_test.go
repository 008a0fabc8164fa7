package progression

import (
	"testing"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/stretchr/testify/assert"
)

func badgeIDs(badges []Badge) []string {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestEvaluateFirstParty(t *testing.T) {
	satisfied := Evaluate(&models.Stats{TotalParties: 1}, nil)
	assert.Equal(t, []string{"first_party"}, badgeIDs(satisfied))
}

func TestEvaluateDrinkTiers(t *testing.T) {
	assert.NotContains(t, badgeIDs(Evaluate(&models.Stats{TotalDrinks: 49}, nil)), "drinks_1")

	ids := badgeIDs(Evaluate(&models.Stats{TotalParties: 5, TotalDrinks: 250}, nil))
	assert.Contains(t, ids, "drinks_1")
	assert.Contains(t, ids, "drinks_2")
	assert.NotContains(t, ids, "drinks_3")
}

func TestEvaluateSingleNightBadges(t *testing.T) {
	sober := &models.Party{
		Drinks: []*models.DrinkEntry{{Type: "Bière", Quantity: 10}},
	}
	ids := badgeIDs(Evaluate(&models.Stats{TotalParties: 1}, sober))
	assert.Contains(t, ids, "iron_stomach")
	assert.NotContains(t, ids, "legendary_night")

	rough := &models.Party{
		Drinks: []*models.DrinkEntry{{Type: "Shot", Quantity: 16}},
		Events: map[string]int{models.EventVomi: 3},
	}
	ids = badgeIDs(Evaluate(&models.Stats{TotalParties: 1}, rough))
	assert.NotContains(t, ids, "iron_stomach")
	assert.Contains(t, ids, "legendary_night")
	assert.Contains(t, ids, "blackout_king")
}

func TestEvaluatePacifistNeedsCleanRecord(t *testing.T) {
	ids := badgeIDs(Evaluate(&models.Stats{TotalParties: 20, TotalFights: 0}, nil))
	assert.Contains(t, ids, "pacifist")

	ids = badgeIDs(Evaluate(&models.Stats{TotalParties: 20, TotalFights: 1}, nil))
	assert.NotContains(t, ids, "pacifist")
}

func TestEvaluateCategoryBadges(t *testing.T) {
	ids := badgeIDs(Evaluate(&models.Stats{
		TotalParties:    15,
		PartyCategories: map[string]int{"Festival": 5, "Clubbing": 10},
		DrinkQuantities: map[string]int{"Vin": 50},
		UniqueLocations: 5,
	}, nil))

	assert.Contains(t, ids, "festival_goer")
	assert.Contains(t, ids, "clubber")
	assert.Contains(t, ids, "sommelier")
	assert.Contains(t, ids, "explorer")
}

func TestEvaluateIsStateless(t *testing.T) {
	s := &models.Stats{TotalParties: 1, TotalVomi: 1}

	first := badgeIDs(Evaluate(s, nil))
	second := badgeIDs(Evaluate(s, nil))
	assert.Equal(t, first, second)
}

func TestBadgeByID(t *testing.T) {
	b, ok := BadgeByID("sommelier")
	assert.True(t, ok)
	assert.Equal(t, "Sommelier", b.Name)

	_, ok = BadgeByID("nope")
	assert.False(t, ok)
}
