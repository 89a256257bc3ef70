// Package bot holds the gateway-facing layer: session lifecycle, command
// registration and routing of interactions and messages to the feature
// handlers.
package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/bot/middleware"
	"github.com/ironkeep/fitness-bot/internal/features/board"
	"github.com/ironkeep/fitness-bot/internal/features/checkin"
	"github.com/ironkeep/fitness-bot/internal/features/drops"
	"github.com/ironkeep/fitness-bot/internal/features/logbook"
	"github.com/ironkeep/fitness-bot/internal/features/reminder"
	"github.com/ironkeep/fitness-bot/internal/features/scoring"
	"github.com/ironkeep/fitness-bot/internal/features/streak"
)

// Intents covers everything the bot listens for: guild metadata, guild
// messages with content (check-in replies, reminders) and the member list
// (drop targets).
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentMessageContent |
	discordgo.IntentsGuildMembers

// Bot ties the session to the feature handlers.
type Bot struct {
	session *discordgo.Session

	logbookHandler  *logbook.Handler
	boardHandler    *board.Handler
	streakHandler   *streak.Handler
	checkinHandler  *checkin.Handler
	checkinManager  *checkin.Manager
	dropsHandler    *drops.Handler
	reminderHandler *reminder.Handler
}

// New assembles the bot from its handlers. The session must not be opened
// yet; Start does that after the event handlers are attached.
func New(
	session *discordgo.Session,
	logbookHandler *logbook.Handler,
	boardHandler *board.Handler,
	streakHandler *streak.Handler,
	checkinHandler *checkin.Handler,
	checkinManager *checkin.Manager,
	dropsHandler *drops.Handler,
	reminderHandler *reminder.Handler,
) *Bot {
	return &Bot{
		session:         session,
		logbookHandler:  logbookHandler,
		boardHandler:    boardHandler,
		streakHandler:   streakHandler,
		checkinHandler:  checkinHandler,
		checkinManager:  checkinManager,
		dropsHandler:    dropsHandler,
		reminderHandler: reminderHandler,
	}
}

// Session exposes the underlying session for the scheduler's broadcasts.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// SendMessage posts plain text to a channel. The check-in manager uses it
// as its send hook.
func (b *Bot) SendMessage(channelID, content string) error {
	if _, err := b.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("send to channel %s: %w", channelID, err)
	}
	return nil
}

// Start attaches the event handlers, opens the gateway connection and
// blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	b.session.Identify.Intents = Intents

	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithField("username", r.User.Username).Info("logged in, gateway ready")
	})
	b.session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		b.registerCommands(s, g)
	})
	b.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(ctx, s, i)
	})
	b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.handleMessage(ctx, s, m)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	log.Info("bot is up and waiting for events")

	<-ctx.Done()
	log.Info("bot stopping (ctx done)")
	return b.session.Close()
}

// registerCommands overwrites the guild's command set with ours. Per-guild
// registration applies instantly, unlike global commands.
func (b *Bot) registerCommands(s *discordgo.Session, g *discordgo.GuildCreate) {
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, g.ID, Commands())
	if err != nil {
		log.WithError(err).WithField("guild_id", g.ID).Error("command registration failed")
		return
	}
	log.WithFields(log.Fields{
		"guild_id": g.ID,
		"guild":    g.Name,
	}).Info("commands registered")
}

func (b *Bot) handleInteraction(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer middleware.RecoverFromPanic()

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	middleware.LogCommand(i)

	switch i.ApplicationCommandData().Name {
	case "log_lift":
		b.logbookHandler.HandleLogLift(ctx, s, i)
	case "log_run":
		b.logbookHandler.HandleLogRun(ctx, s, i)
	case "log_steps":
		b.logbookHandler.HandleLogSteps(ctx, s, i)
	case "log_sleep":
		b.logbookHandler.HandleLogSleep(ctx, s, i)
	case "log_protein":
		b.logbookHandler.HandleLogProtein(ctx, s, i)
	case "log_supplements":
		b.logbookHandler.HandleLogSupplements(ctx, s, i)
	case "log_water":
		b.logbookHandler.HandleLogWater(ctx, s, i)
	case "log_alcohol":
		b.logbookHandler.HandleLogAlcohol(ctx, s, i)
	case "log_pastry":
		b.logbookHandler.HandleLogPastry(ctx, s, i)
	case "log_fastfood":
		b.logbookHandler.HandleLogFastFood(ctx, s, i)
	case "daily_summary":
		b.logbookHandler.HandleDailySummary(ctx, s, i)
	case "leaderboard":
		b.boardHandler.HandleLeaderboard(ctx, s, i)
	case "week_summary":
		b.boardHandler.HandleWeekSummary(ctx, s, i)
	case "weekly_winners":
		b.boardHandler.HandleWeeklyWinners(ctx, s, i)
	case "streak":
		b.streakHandler.HandleStreak(ctx, s, i)
	case "checkin":
		b.checkinHandler.HandleCheckin(ctx, s, i)
	case "yesterday_checkin":
		b.checkinHandler.HandleCheckinYesterday(ctx, s, i)
	case "quote":
		b.dropsHandler.HandleQuote(s, i)
	case "rules":
		b.handleRules(s, i)
	default:
		log.WithField("command", i.ApplicationCommandData().Name).Warn("unknown command")
	}
}

// handleMessage feeds guild chatter to the two passive consumers: an
// active check-in session first, the daily reminder second.
func (b *Bot) handleMessage(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	defer middleware.RecoverFromPanic()

	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}
	middleware.LogMessage(m)

	if b.checkinManager.Offer(m.ChannelID, m.Author.ID, m.Content) {
		return
	}
	b.reminderHandler.HandleMessage(ctx, s, m)
}

func (b *Bot) handleRules(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: scoring.RulesText()},
	})
	if err != nil {
		log.WithError(err).Error("rules: interaction respond")
	}
}
