// handlers.go answers /leaderboard, /week_summary and /weekly_winners.

package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/common"
	"github.com/ironkeep/fitness-bot/internal/features/streak"
)

// Embed colors, matching the announcement style members are used to.
const (
	colorGold  = 0xF1C40F
	colorGreen = 0x2ECC71
)

const loadFailedReply = "❌ Couldn't load the board. Try again in a moment."

// Handler answers the board slash commands.
type Handler struct {
	svc   *Service
	limit int // default leaderboard size
}

// NewHandler creates a board command handler.
func NewHandler(svc *Service, limit int) *Handler {
	return &Handler{svc: svc, limit: limit}
}

// HandleLeaderboard shows ranked totals for the trailing window
// (default 7 days), each row annotated with streak and badge.
func (h *Handler) HandleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	days := intOption(i, "days", 7)
	start, end := common.TrailingRange(time.Now(), days)

	rows, err := h.svc.TopRows(ctx, days, h.limit)
	if err != nil {
		log.WithError(err).Error("leaderboard failed")
		respond(s, i, loadFailedReply)
		return
	}
	if len(rows) == 0 {
		respond(s, i, "No logs found in that period.")
		return
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		badge := row.Badge
		if row.CurrentStreak == 0 {
			badge = "✨"
		}
		lines = append(lines, fmt.Sprintf("**%d.** %s — `%s pts` (streak: %dd, %s)",
			row.Rank, row.Username, common.FormatPoints(row.Points), row.CurrentStreak, badge))
	}

	respondEmbed(s, i, "", &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Leaderboard (%s → %s)", start, end),
		Description: strings.Join(lines, "\n"),
		Color:       colorGold,
	})
}

// HandleWeekSummary shows the caller's per-day totals, range total and
// streak state for the trailing window (default 7 days).
func (h *Handler) HandleWeekSummary(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commandUser(i)
	days := intOption(i, "days", 7)
	start, end := common.TrailingRange(time.Now(), days)

	summary, err := h.svc.SummaryForUser(ctx, user.ID, days)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("week summary failed")
		respond(s, i, loadFailedReply)
		return
	}
	if len(summary.Days) == 0 {
		respond(s, i, fmt.Sprintf("No logs found for you between **%s** and **%s**.", start, end))
		return
	}

	lines := []string{fmt.Sprintf("📊 **%d-day summary** for %s (%s → %s):",
		days, user.Mention(), start, end)}
	for _, dt := range summary.Days {
		lines = append(lines, fmt.Sprintf("- `%s`: **%s pts**", dt.Date, common.FormatPoints(dt.Points)))
	}
	lines = append(lines,
		fmt.Sprintf("\n**Total over %d days:** `%s pts`", days, common.FormatPoints(summary.Total)),
		"",
		streak.FormatStreak(summary.CurrentStreak, summary.BestStreak),
	)

	respond(s, i, strings.Join(lines, "\n"))
}

// HandleWeeklyWinners announces the top entrants for the trailing window,
// highlighting the leader as champion.
func (h *Handler) HandleWeeklyWinners(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	days := intOption(i, "days", 7)
	topN := intOption(i, "top_n", 3)
	start, end := common.TrailingRange(time.Now(), days)

	rows, err := h.svc.TopRows(ctx, days, topN)
	if err != nil {
		log.WithError(err).Error("weekly winners failed")
		respond(s, i, loadFailedReply)
		return
	}
	if len(rows) == 0 {
		respond(s, i, fmt.Sprintf("No logs found between **%s** and **%s**.", start, end))
		return
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("**#%d** %s — `%s pts` (streak: %dd, best: %dd, %s)",
			row.Rank, row.Username, common.FormatPoints(row.Points),
			row.CurrentStreak, row.BestStreak, row.Badge))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Weekly Winners (%s → %s)", start, end),
		Description: strings.Join(lines, "\n"),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{{
			Name: "🥇 Champion",
			Value: fmt.Sprintf("**%s** with `%s pts`",
				rows[0].Username, common.FormatPoints(rows[0].Points)),
		}},
	}

	respondEmbed(s, i, "📣 **Weekly Results Are In!**", embed)
}

func commandUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// intOption reads an optional integer option, falling back to def when
// the caller left it out.
func intOption(i *discordgo.InteractionCreate, name string, def int) int {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return def
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.WithError(err).Error("failed to respond to interaction")
	}
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, content string, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Embeds:  []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.WithError(err).Error("failed to respond to interaction")
	}
}
