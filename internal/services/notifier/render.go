package notifier

import (
	"fmt"

	"github.com/drinkwise/drinkwise/internal/models"
)

// Rendered is a notification with its display strings resolved.
type Rendered struct {
	Notification *models.Notification
	Title        string
	Body         string
}

// Render resolves the display title and body for a notification.
// Unknown types fall back to the app name and the raw message.
func Render(n *models.Notification) *Rendered {
	r := &Rendered{Notification: n}

	switch n.Type {
	case models.NotificationTypeLike:
		r.Title = "❤️ Nouveau J'aime"
		target := "publication"
		if n.Data["contentType"] == "party" {
			target = "soirée"
		}
		r.Body = fmt.Sprintf("%s a aimé votre %s", n.Data["userName"], target)

	case models.NotificationTypeComment:
		r.Title = "💬 Nouveau Commentaire"
		r.Body = fmt.Sprintf("%s: %q", n.Data["userName"], n.Data["content"])

	case models.NotificationTypeFriendRequest:
		r.Title = "👥 Demande d'Ami"
		r.Body = fmt.Sprintf("%s vous a envoyé une demande d'ami", n.Data["userName"])

	case models.NotificationTypeFriendAccepted:
		r.Title = "✅ Ami Accepté"
		r.Body = fmt.Sprintf("%s a accepté votre demande d'ami", n.Data["userName"])

	case models.NotificationTypeBadgeUnlock:
		r.Title = "🎖️ Nouveau Badge"
		r.Body = fmt.Sprintf("Vous avez débloqué « %s »", n.Data["badgeName"])

	case models.NotificationTypeTournamentResult:
		r.Title = "🏆 Tournoi Terminé"
		r.Body = fmt.Sprintf("%s : victoire de %s", n.Data["tournamentName"], n.Data["winner"])

	default:
		r.Title = "DrinkWise"
		r.Body = n.Message
	}

	return r
}
