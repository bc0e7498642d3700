package models

// GuildConfig holds a guild's tracking configuration, set by admin commands
type GuildConfig struct {
	// GuildID is the Discord server this configuration belongs to
	GuildID string

	// CreatorHandle is the TikTok account to track, without the @ prefix
	CreatorHandle string

	// TrackingEnabled indicates whether tracking may be started
	TrackingEnabled bool

	// ChannelID is the Discord channel leaderboards are posted to
	ChannelID string

	// Timezone is the IANA timezone name for the weekly boundary
	Timezone string

	// WeeklyDay is the ISO weekday (1=Monday .. 7=Sunday) of the weekly boundary
	WeeklyDay int

	// WeeklyHour is the hour of the weekly boundary in the guild's timezone
	WeeklyHour int

	// WeeklyMinute is the minute of the weekly boundary
	WeeklyMinute int
}

// RoleKind identifies a rotating single-holder role
type RoleKind string

const (
	// RoleTopGifter is awarded to the top gifter of each live session
	RoleTopGifter RoleKind = "top_gifter"

	// RoleSoreFinger is awarded weekly to the top tapper
	RoleSoreFinger RoleKind = "sore_finger"
)

// RoleName returns the Discord role name for a role kind
func (r RoleKind) RoleName() string {
	switch r {
	case RoleTopGifter:
		return "Top Gifter"
	case RoleSoreFinger:
		return "Sore Finger"
	}
	return string(r)
}
