// Package app initializes all application components.
// app.go is the assembly point: it opens the database, builds repositories,
// services and handlers, and ties everything into one Bot.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/bot"
	"github.com/ironkeep/fitness-bot/internal/config"
	"github.com/ironkeep/fitness-bot/internal/db/sqlite"
	"github.com/ironkeep/fitness-bot/internal/features/board"
	"github.com/ironkeep/fitness-bot/internal/features/checkin"
	"github.com/ironkeep/fitness-bot/internal/features/drops"
	"github.com/ironkeep/fitness-bot/internal/features/logbook"
	"github.com/ironkeep/fitness-bot/internal/features/reminder"
	"github.com/ironkeep/fitness-bot/internal/features/streak"
	"github.com/ironkeep/fitness-bot/internal/jobs"
)

// App holds every long-lived component of the application.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *sql.DB
	Session   *discordgo.Session
}

// New creates and initializes the application. Initialization order
// matters: storage first, then the session, then the layers on top.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. Database ===
	db, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.WithField("path", cfg.DBPath).Info("database ready")

	// === 2. Discord session ===
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// === 3. Repositories ===
	logRepo := logbook.NewRepository(db)

	// === 4. Services ===
	logService := logbook.NewService(logRepo)
	streakService := streak.NewService(logService)
	boardService := board.NewService(logService, streakService)

	// === 5. Check-in dialog ===
	sendMessage := func(channelID, content string) error {
		_, err := session.ChannelMessageSend(channelID, content)
		return err
	}
	checkinManager := checkin.NewManager(logService, sendMessage, cfg.CheckinTimeout)

	// === 6. Handlers ===
	logHandler := logbook.NewHandler(logService)
	boardHandler := board.NewHandler(boardService, cfg.LeaderboardLimit)
	streakHandler := streak.NewHandler(streakService)
	checkinHandler := checkin.NewHandler(checkinManager)
	dropsHandler := drops.NewHandler()
	reminderHandler := reminder.NewHandler(logService, cfg.ReminderChannels)

	// === 7. Bot ===
	b := bot.New(
		session,
		logHandler,
		boardHandler,
		streakHandler,
		checkinHandler,
		checkinManager,
		dropsHandler,
		reminderHandler,
	)

	// === 8. Scheduler ===
	scheduler := jobs.NewScheduler(
		func() { drops.Broadcast(session) },
		cfg.DropMorningCron,
		cfg.DropAfternoonCron,
	)

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        db,
		Session:   session,
	}, nil
}
