package tiktok

// TikTokError is a custom error type for live-source errors
type TikTokError string

// Error implements the error interface
func (e TikTokError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMalformedEvent TikTokError = "malformed live event"
	ErrStreamEnded    TikTokError = "broadcast ended"
	ErrNilConfig      TikTokError = "config cannot be nil"
	ErrEmptyHandle    TikTokError = "handle cannot be empty"
)
