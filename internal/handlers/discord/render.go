package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/creatorsconnections/tokboard/internal/models"
)

const embedColor = 0xfe2c55 // TikTok pink

var rankEmojis = []string{"🥇", "🥈", "🥉"}

// renderSnapshot renders a leaderboard snapshot as a Discord embed
func renderSnapshot(snapshot *models.LeaderboardSnapshot) *discordgo.MessageEmbed {
	title := "Weekly Leaderboard"
	if snapshot.Scope == models.ScopeSession {
		title = fmt.Sprintf("Live Session #%d Leaderboard", snapshot.SessionID)
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎁 Top Gifters",
				Value:  renderBoard(snapshot.TopGifters, "coins"),
				Inline: false,
			},
			{
				Name:   "👆 Top Tappers",
				Value:  renderBoard(snapshot.TopTappers, "taps"),
				Inline: false,
			},
		},
	}
	if !snapshot.TakenAt.IsZero() {
		embed.Timestamp = snapshot.TakenAt.Format(time.RFC3339)
	}
	return embed
}

// renderBoard renders one ranked board as embed field text
func renderBoard(entries []models.Entry, unit string) string {
	if len(entries) == 0 {
		return "No contributions yet."
	}

	var sb strings.Builder
	for _, entry := range entries {
		rank := fmt.Sprintf("%d.", entry.Rank)
		if entry.Rank <= len(rankEmojis) {
			rank = rankEmojis[entry.Rank-1]
		}
		sb.WriteString(fmt.Sprintf("%s %s: %d %s\n", rank, entry.Identity.DisplayName(), entry.Value, unit))
	}
	return sb.String()
}
