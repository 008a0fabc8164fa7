package progression

import (
	"github.com/drinkwise/drinkwise/internal/models"
)

// Badge is an unlockable achievement. Criteria decides whether the
// badge is satisfied given the full aggregated stats and the party
// that triggered the evaluation. Criteria must be pure.
type Badge struct {
	// ID is the stable identifier stored in the unlock set
	ID string

	// Name is the display name
	Name string

	// Description explains how the badge is earned
	Description string

	// Criteria reports whether the badge is satisfied. party is the
	// just-finalized party for single-night badges, may be nil.
	Criteria func(stats *models.Stats, party *models.Party) bool
}

// Catalog is the full badge catalog, in unlock-check order.
var Catalog = []Badge{
	{
		ID:          "first_party",
		Name:        "Première Soirée",
		Description: "Enregistrer sa première soirée",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalParties >= 1
		},
	},
	{
		ID:          "drinks_1",
		Name:        "Buveur Amateur",
		Description: "Consommer 50 verres au total",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalDrinks >= 50
		},
	},
	{
		ID:          "drinks_2",
		Name:        "Buveur Confirmé",
		Description: "Consommer 250 verres au total",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalDrinks >= 250
		},
	},
	{
		ID:          "drinks_3",
		Name:        "Gosier Légendaire",
		Description: "Consommer 1000 verres au total",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalDrinks >= 1000
		},
	},
	{
		ID:          "vomi_1",
		Name:        "Baptême du Feu",
		Description: "Vomir pour la première fois",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalVomi >= 1
		},
	},
	{
		ID:          "vomi_2",
		Name:        "Estomac Fragile",
		Description: "Vomir 10 fois au total",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalVomi >= 10
		},
	},
	{
		ID:          "fights_1",
		Name:        "Bagarreur",
		Description: "Se battre 5 fois au total",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalFights >= 5
		},
	},
	{
		ID:          "iron_stomach",
		Name:        "Estomac d'Acier",
		Description: "Boire 10 verres en une soirée sans vomir",
		Criteria: func(_ *models.Stats, p *models.Party) bool {
			return p != nil && p.TotalDrinks() >= 10 && p.EventCount(models.EventVomi) == 0
		},
	},
	{
		ID:          "pacifist",
		Name:        "Pacifiste",
		Description: "20 soirées sans la moindre bagarre",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalParties >= 20 && s.TotalFights == 0
		},
	},
	{
		ID:          "legendary_night",
		Name:        "Nuit Légendaire",
		Description: "Boire 15 verres en une seule soirée",
		Criteria: func(_ *models.Stats, p *models.Party) bool {
			return p != nil && p.TotalDrinks() >= 15
		},
	},
	{
		ID:          "blackout_king",
		Name:        "Trou Noir Galactique",
		Description: "Survivre à une soirée vraiment trop arrosée",
		Criteria: func(_ *models.Stats, p *models.Party) bool {
			return p != nil && p.EventCount(models.EventVomi) >= 3
		},
	},
	{
		ID:          "social_butterfly",
		Name:        "Papillon Social",
		Description: "Aborder 50 personnes au total",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalGirlsTalkedTo >= 50
		},
	},
	{
		ID:          "heartbreaker",
		Name:        "Cœur Brisé",
		Description: "Se faire recaler 20 fois",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.TotalRecal >= 20
		},
	},
	{
		ID:          "festival_goer",
		Name:        "Festivalier",
		Description: "Participer à 5 festivals",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.PartyCategories["Festival"] >= 5
		},
	},
	{
		ID:          "clubber",
		Name:        "Clubbeur Invétéré",
		Description: "Sortir 10 fois en boîte",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.PartyCategories["Clubbing"] >= 10
		},
	},
	{
		ID:          "sommelier",
		Name:        "Sommelier",
		Description: "Boire 50 verres de vin",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.DrinkQuantities["Vin"] >= 50
		},
	},
	{
		ID:          "explorer",
		Name:        "Explorateur",
		Description: "Faire la fête dans 5 lieux différents",
		Criteria: func(s *models.Stats, _ *models.Party) bool {
			return s.UniqueLocations >= 5
		},
	},
}

// BadgeByID looks a badge up in the catalog.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Evaluate returns every catalog badge whose criteria hold for the
// given stats and triggering party. Stateless: it never consults the
// stored unlock set, so callers diff against it themselves.
func Evaluate(stats *models.Stats, party *models.Party) []Badge {
	var satisfied []Badge
	for _, b := range Catalog {
		if b.Criteria(stats, party) {
			satisfied = append(satisfied, b)
		}
	}
	return satisfied
}
