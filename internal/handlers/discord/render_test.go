package discord

import (
	"testing"
	"time"

	"github.com/creatorsconnections/tokboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSnapshotSession(t *testing.T) {
	snapshot := &models.LeaderboardSnapshot{
		GuildID:   "guild-1",
		Scope:     models.ScopeSession,
		SessionID: 12,
		TakenAt:   time.Date(2026, 8, 29, 21, 0, 0, 0, time.UTC),
		TopGifters: []models.Entry{
			{Identity: models.LinkedIdentity("member-1", "userA"), Value: 500, Rank: 1},
			{Identity: models.UnlinkedIdentity("userB"), Value: 120, Rank: 2},
		},
	}

	embed := renderSnapshot(snapshot)

	assert.Equal(t, "Live Session #12 Leaderboard", embed.Title)
	require.Len(t, embed.Fields, 2)

	gifters := embed.Fields[0].Value
	assert.Contains(t, gifters, "🥇 <@member-1>: 500 coins")
	assert.Contains(t, gifters, "🥈 @userB: 120 coins")

	assert.Equal(t, "No contributions yet.", embed.Fields[1].Value)
	assert.Equal(t, "2026-08-29T21:00:00Z", embed.Timestamp)
}

func TestRenderSnapshotWeekly(t *testing.T) {
	snapshot := &models.LeaderboardSnapshot{
		GuildID: "guild-1",
		Scope:   models.ScopeWeek,
		TopTappers: []models.Entry{
			{Identity: models.UnlinkedIdentity("userC"), Value: 44, Rank: 1},
		},
	}

	embed := renderSnapshot(snapshot)

	assert.Equal(t, "Weekly Leaderboard", embed.Title)
	assert.Contains(t, embed.Fields[1].Value, "🥇 @userC: 44 taps")
}

func TestRenderBoardNumericRanks(t *testing.T) {
	entries := make([]models.Entry, 5)
	for i := range entries {
		entries[i] = models.Entry{
			Identity: models.UnlinkedIdentity(string(rune('a' + i))),
			Value:    100 - i,
			Rank:     i + 1,
		}
	}

	text := renderBoard(entries, "coins")
	assert.Contains(t, text, "4. @d: 97 coins")
	assert.Contains(t, text, "5. @e: 96 coins")
}
