package tracker

// TrackerError is a tracker service error
type TrackerError string

// Error returns the error message
func (e TrackerError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = TrackerError("config cannot be nil")

	// ErrNilSource is returned when the live source is nil
	ErrNilSource = TrackerError("live source cannot be nil")

	// ErrNilBoard is returned when the board service is nil
	ErrNilBoard = TrackerError("board service cannot be nil")

	// ErrNilHandOff is returned when the hand-off service is nil
	ErrNilHandOff = TrackerError("hand-off service cannot be nil")

	// ErrNilPublisher is returned when the publisher is nil
	ErrNilPublisher = TrackerError("publisher cannot be nil")

	// ErrNilSessionRepo is returned when the session repository is nil
	ErrNilSessionRepo = TrackerError("session repository cannot be nil")

	// ErrNilGuildConfigRepo is returned when the guild config repository is nil
	ErrNilGuildConfigRepo = TrackerError("guild config repository cannot be nil")

	// ErrNilClock is returned when the clock is nil
	ErrNilClock = TrackerError("clock cannot be nil")

	// ErrAlreadyTracking is returned when tracking is already running for the guild
	ErrAlreadyTracking = TrackerError("tracking is already running for this guild")

	// ErrNotTracking is returned when no tracking is running for the guild
	ErrNotTracking = TrackerError("no tracking is running for this guild")

	// ErrTrackingDisabled is returned when tracking has not been enabled
	ErrTrackingDisabled = TrackerError("tracking is not enabled for this guild")

	// ErrNoCreatorHandle is returned when the guild has no creator handle configured
	ErrNoCreatorHandle = TrackerError("no creator handle configured")

	// ErrNoTargetChannel is returned when the guild has no target channel configured
	ErrNoTargetChannel = TrackerError("no target channel configured")

	// ErrCreatorNotLive is returned when the creator is not broadcasting
	ErrCreatorNotLive = TrackerError("creator is not live right now")
)
