package board

// BoardError is a custom error type for leaderboard-related errors
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoOpenSession      BoardError = "no open session"
	ErrSessionAlreadyOpen BoardError = "a session is already open"
	ErrNilConfig          BoardError = "config cannot be nil"
	ErrNilLinkRepo        BoardError = "link map repository cannot be nil"
	ErrNilCounterRepo     BoardError = "counter repository cannot be nil"
	ErrNilClock           BoardError = "clock cannot be nil"
	ErrInvalidEvent       BoardError = "event handle and delta cannot be empty"
)
