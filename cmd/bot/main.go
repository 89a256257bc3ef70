// Package main is the bot entrypoint.
// Loads configuration, initializes the application and runs it.
// Supports graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/app"
	"github.com/ironkeep/fitness-bot/internal/config"
)

func main() {
	setupLogging()

	// .env is optional; in production everything comes from the real
	// environment.
	if err := godotenv.Load(); err == nil {
		log.Debug(".env loaded")
	}

	log.Info("=== bot starting ===")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := log.ParseLevel(cfg.AppLogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize application")
	}
	defer application.DB.Close()

	if err := application.Scheduler.Start(); err != nil {
		log.WithError(err).Fatal("failed to start scheduler")
	}
	defer application.Scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Bot.Start(ctx); err != nil {
			log.WithError(err).Error("bot stopped with error")
			cancel()
		}
	}()

	log.Info("=== bot is ready ===")

	select {
	case sig := <-quit:
		log.Infof("received signal %s, shutting down...", sig)
	case <-ctx.Done():
	}

	cancel()
	log.Info("=== bot stopped ===")
}

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}
