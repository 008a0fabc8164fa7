package scoring

// ScoringError is a custom error type for tournament scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTournamentEnded ScoringError = "tournament is no longer accepting scores"
	ErrModeNotAllowed  ScoringError = "game mode is not enabled for this tournament"
	ErrNotParticipant  ScoringError = "user has not joined this tournament"
	ErrInvalidWindow   ScoringError = "tournament end must be after its start"
	ErrNoModes         ScoringError = "tournament needs at least one game mode"
	ErrUnknownMode     ScoringError = "unknown game mode"
)
