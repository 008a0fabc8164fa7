package models

// MostConsumedDrink identifies the drink type with the highest
// cumulative quantity across a party history.
type MostConsumedDrink struct {
	// Type is the drink type, or "Aucune" when no drinks exist
	Type string

	// Brand is the dominant brand within the type, may be empty
	Brand string

	// Quantity is the cumulative quantity for the type
	Quantity int
}

// Stats are the aggregated statistics over a user's party history.
// Derived data: always recomputed from the party list, never the
// source of truth.
type Stats struct {
	// TotalParties is the number of parties
	TotalParties int

	// TotalDrinks is the summed quantity over all drinks
	TotalDrinks int

	// TotalVolume is the estimated consumed volume in centiliters
	TotalVolume int

	// TotalVomi, TotalFights, TotalRecal and TotalGirlsTalkedTo are
	// summed event counters
	TotalVomi          int
	TotalFights        int
	TotalRecal         int
	TotalGirlsTalkedTo int

	// UniqueLocations counts distinct lowercased locations
	UniqueLocations int

	// DrinkQuantities maps drink type to cumulative quantity
	DrinkQuantities map[string]int

	// DrinkVolumes maps drink type to cumulative centiliters
	DrinkVolumes map[string]int

	// PartyCategories maps party category to party count
	PartyCategories map[string]int

	// MostConsumedDrink is the first-encountered max quantity type
	MostConsumedDrink MostConsumedDrink
}
