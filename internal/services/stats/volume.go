package stats

// Estimated serving size in centiliters per drink type. Public venues
// pour standardized servings; at home people pour from the bottle, so
// the two contexts carry different estimates.
var (
	publicVolumes = map[string]int{
		"Bière":      50,
		"Spiritueux": 3,
		"Vin":        12,
		"Champagne":  10,
		"Cocktail":   15,
		"Shot":       4,
		"Autre":      25,
	}

	privateVolumes = map[string]int{
		"Bière":      33,
		"Spiritueux": 5,
		"Vin":        15,
		"Champagne":  12,
		"Cocktail":   20,
		"Shot":       4,
		"Autre":      25,
	}

	privateCategories = map[string]bool{
		"Maison":            true,
		"Anniversaire":      true,
		"Soirée entre amis": true,
		"Mariage":           true,
		"Nouvel An":         true,
		"Autre":             true,
	}
)

// DrinkVolume estimates the consumed volume in centiliters for a
// quantity of drinks of a given type, in a given party category.
// Unknown drink types fall back to the "Autre" serving size.
func DrinkVolume(drinkType, category string, quantity int) int {
	volumes := publicVolumes
	if privateCategories[category] {
		volumes = privateVolumes
	}

	perDrink, ok := volumes[drinkType]
	if !ok {
		perDrink = publicVolumes["Autre"]
	}

	return perDrink * quantity
}
