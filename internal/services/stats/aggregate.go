package stats

import (
	"strings"

	"github.com/drinkwise/drinkwise/internal/models"
)

// NoDrinks is the sentinel type for a history with no drinks at all.
const NoDrinks = "Aucune"

// Aggregate recomputes the full statistics over a party history. The
// totals depend only on the multiset of parties; input order matters
// solely for breaking most-consumed ties, where the first drink type
// logged wins.
func Aggregate(parties []*models.Party) *models.Stats {
	s := &models.Stats{
		TotalParties:    len(parties),
		DrinkQuantities: make(map[string]int),
		DrinkVolumes:    make(map[string]int),
		PartyCategories: make(map[string]int),
	}

	locations := make(map[string]bool)
	brandQuantities := make(map[string]map[string]int)
	typeOrder := make(map[string]int)
	brandOrder := make(map[string]map[string]int)

	for _, p := range parties {
		for _, d := range p.Drinks {
			s.TotalDrinks += d.Quantity
			if _, seen := s.DrinkQuantities[d.Type]; !seen {
				typeOrder[d.Type] = len(typeOrder)
			}
			s.DrinkQuantities[d.Type] += d.Quantity

			volume := DrinkVolume(d.Type, p.Category, d.Quantity)
			s.TotalVolume += volume
			s.DrinkVolumes[d.Type] += volume

			if d.Brand != "" {
				if brandQuantities[d.Type] == nil {
					brandQuantities[d.Type] = make(map[string]int)
					brandOrder[d.Type] = make(map[string]int)
				}
				if _, seen := brandQuantities[d.Type][d.Brand]; !seen {
					brandOrder[d.Type][d.Brand] = len(brandOrder[d.Type])
				}
				brandQuantities[d.Type][d.Brand] += d.Quantity
			}
		}

		s.TotalVomi += p.EventCount(models.EventVomi)
		s.TotalFights += p.EventCount(models.EventFights)
		s.TotalRecal += p.EventCount(models.EventRecal)
		s.TotalGirlsTalkedTo += p.EventCount(models.EventGirlsTalkedTo)

		if loc := strings.TrimSpace(strings.ToLower(p.Location)); loc != "" {
			locations[loc] = true
		}

		if p.Category != "" {
			s.PartyCategories[p.Category]++
		}
	}

	s.UniqueLocations = len(locations)
	s.MostConsumedDrink = mostConsumed(s.DrinkQuantities, typeOrder, brandQuantities, brandOrder)

	return s
}

// mostConsumed picks the drink type with the highest cumulative
// quantity. Ties resolve in favor of whichever type was logged first
// in the history, so the result only changes when a later drink
// strictly overtakes the leader.
func mostConsumed(quantities, typeOrder map[string]int, brands, brandOrder map[string]map[string]int) models.MostConsumedDrink {
	top := models.MostConsumedDrink{Type: NoDrinks}

	for drinkType, quantity := range quantities {
		if quantity > top.Quantity ||
			(quantity == top.Quantity && top.Type != NoDrinks && typeOrder[drinkType] < typeOrder[top.Type]) {
			top.Type = drinkType
			top.Quantity = quantity
		}
	}

	if top.Type == NoDrinks {
		return top
	}

	best := 0
	for brand, quantity := range brands[top.Type] {
		if quantity > best ||
			(quantity == best && top.Brand != "" && brandOrder[top.Type][brand] < brandOrder[top.Type][top.Brand]) {
			top.Brand = brand
			best = quantity
		}
	}

	return top
}
