package session

// SessionError is a custom error type for party session errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionActive SessionError = "a party session is already active"
	ErrNoSession     SessionError = "no party session is active"
	ErrInvalidDrink  SessionError = "drink type and quantity are required"
)
