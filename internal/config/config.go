// Package config loads the bot configuration from environment variables.
// envconfig maps the variables onto the struct fields.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds ALL application settings.
type Config struct {
	// --- Discord ---
	DiscordToken string `envconfig:"DISCORD_TOKEN" required:"true"`

	// --- Database ---
	// Path to the SQLite file. Relative paths resolve against the working
	// directory, which in Docker is the mounted data volume.
	DBPath string `envconfig:"DB_PATH" default:"fitness_points.db"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`

	// --- Check-in dialog ---
	CheckinTimeout time.Duration `envconfig:"CHECKIN_TIMEOUT" default:"120s"`

	// --- Reminders ---
	// Channel names (comma separated) where the once-a-day reminder fires.
	ReminderChannelsRaw string   `envconfig:"REMINDER_CHANNELS" default:"general,fitness,gym,fit-challenge"`
	ReminderChannels    []string `envconfig:"-"`

	// --- Daily drops ---
	DropMorningCron   string `envconfig:"DROP_MORNING_CRON" default:"0 7 * * *"`
	DropAfternoonCron string `envconfig:"DROP_AFTERNOON_CRON" default:"0 16 * * *"`

	// --- Leaderboard ---
	LeaderboardLimit int `envconfig:"LEADERBOARD_LIMIT" default:"10"`
}

func (c *Config) Validate() error {
	if c.CheckinTimeout <= 0 {
		return fmt.Errorf("CHECKIN_TIMEOUT must be > 0")
	}
	if c.LeaderboardLimit <= 0 {
		return fmt.Errorf("LEADERBOARD_LIMIT must be > 0")
	}
	if len(c.ReminderChannels) == 0 {
		return fmt.Errorf("REMINDER_CHANNELS must name at least one channel")
	}
	if strings.TrimSpace(c.DropMorningCron) == "" || strings.TrimSpace(c.DropAfternoonCron) == "" {
		return fmt.Errorf("drop cron expressions must not be empty")
	}
	return nil
}

// Load reads environment variables and fills the Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	cfg.ReminderChannels = splitCSV(cfg.ReminderChannelsRaw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
