package reminder

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/common"
	"github.com/ironkeep/fitness-bot/internal/features/logbook"
)

const scoreboardLimit = 10

// Handler watches guild chatter and replies at most once per member per UTC
// day, and only in the allow-listed channels.
type Handler struct {
	logs     *logbook.Service
	cache    *DayCache
	channels map[string]struct{}
}

func NewHandler(logs *logbook.Service, channelNames []string) *Handler {
	channels := make(map[string]struct{}, len(channelNames))
	for _, name := range channelNames {
		channels[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	return &Handler{
		logs:     logs,
		cache:    NewDayCache(),
		channels: channels,
	}
}

// HandleMessage runs on every guild message that reached the bot. Bot and DM
// messages are filtered out by the caller.
func (h *Handler) HandleMessage(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	channel, err := s.State.Channel(m.ChannelID)
	if err != nil {
		channel, err = s.Channel(m.ChannelID)
		if err != nil {
			log.WithError(err).WithField("channel_id", m.ChannelID).Debug("reminder: resolve channel")
			return
		}
	}
	if _, ok := h.channels[strings.ToLower(channel.Name)]; !ok {
		return
	}

	today := common.Today()
	if !h.cache.MarkOnce(m.GuildID, m.Author.ID, today) {
		return
	}

	total, err := h.logs.DailyTotal(ctx, m.Author.ID, today)
	if err != nil {
		log.WithError(err).WithField("user_id", m.Author.ID).Error("reminder: daily total")
		return
	}
	rows, err := h.logs.Leaderboard(ctx, 1, scoreboardLimit)
	if err != nil {
		log.WithError(err).Error("reminder: today leaderboard")
		return
	}

	msg := buildReminder(m.Author.Mention(), m.Author.ID, today, total, rows)
	if _, err := s.ChannelMessageSend(m.ChannelID, msg); err != nil {
		log.WithError(err).WithField("guild_id", m.GuildID).Error("reminder: send failed")
	}
}

func buildReminder(mention, userID, today string, total float64, rows []logbook.UserTotal) string {
	lines := []string{
		mention + " welcome back, warrior. 🛡️",
		fmt.Sprintf("Your total for **today** so far: **%s pts**.", common.FormatPoints(total)),
		"",
		"Don’t forget to log your activities:",
		"• `/checkin` for the full daily questionnaire",
		"• `/log_lift`, `/log_run`, `/log_steps`, `/log_sleep`, `/log_protein`, etc.",
		"",
		buildScoreboard(userID, today, rows),
	}
	return strings.Join(lines, "\n")
}

func buildScoreboard(userID, today string, rows []logbook.UserTotal) string {
	if len(rows) == 0 {
		return "No one has logged anything yet today. Be the first to start the grind. 💪"
	}
	lines := []string{fmt.Sprintf("📊 **Today’s scores (%s):**", today)}
	for rank, row := range rows {
		prefix := fmt.Sprintf("%d.", rank+1)
		if row.UserID == userID {
			prefix = "👉"
		}
		lines = append(lines, fmt.Sprintf("%s `%s` — **%s pts**", prefix, row.Username, common.FormatPoints(row.Points)))
	}
	return strings.Join(lines, "\n")
}
