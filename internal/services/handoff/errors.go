package handoff

// HandOffError is a hand-off service error
type HandOffError string

// Error returns the error message
func (e HandOffError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = HandOffError("config cannot be nil")

	// ErrNilPublisher is returned when the publisher is nil
	ErrNilPublisher = HandOffError("publisher cannot be nil")

	// ErrNilRoleRotator is returned when the role rotator is nil
	ErrNilRoleRotator = HandOffError("role rotator cannot be nil")

	// ErrNilSnapshotRepo is returned when the snapshot repository is nil
	ErrNilSnapshotRepo = HandOffError("snapshot repository cannot be nil")

	// ErrNilUUID is returned when the UUID generator is nil
	ErrNilUUID = HandOffError("uuid generator cannot be nil")

	// ErrNilClock is returned when the clock is nil
	ErrNilClock = HandOffError("clock cannot be nil")

	// ErrNilSnapshot is returned when a deliver input carries no snapshot
	ErrNilSnapshot = HandOffError("snapshot cannot be nil")

	// ErrHandOffExhausted is returned when delivery failed past the retry budget
	ErrHandOffExhausted = HandOffError("hand-off failed after all retries")
)
