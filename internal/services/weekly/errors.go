package weekly

// WeeklyError is a weekly scheduler error
type WeeklyError string

// Error returns the error message
func (e WeeklyError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = WeeklyError("config cannot be nil")

	// ErrNilGuildConfigRepo is returned when the guild config repository is nil
	ErrNilGuildConfigRepo = WeeklyError("guild config repository cannot be nil")

	// ErrNilCounterRepo is returned when the counter repository is nil
	ErrNilCounterRepo = WeeklyError("counter repository cannot be nil")

	// ErrNilBoard is returned when the board service is nil
	ErrNilBoard = WeeklyError("board service cannot be nil")

	// ErrNilHandOff is returned when the hand-off service is nil
	ErrNilHandOff = WeeklyError("hand-off service cannot be nil")

	// ErrNilClock is returned when the clock is nil
	ErrNilClock = WeeklyError("clock cannot be nil")
)
