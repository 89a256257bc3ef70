package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/ironkeep/fitness-bot/internal/features/scoring"
)

// Option ranges live in the command definitions so the platform rejects
// out-of-range values before they ever reach a handler.

func minValue(v float64) *float64 {
	return &v
}

func intOpt(name, description string, required bool, min, max float64) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    minValue(min),
		MaxValue:    max,
	}
}

func boolOpt(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// Commands defines every slash command the bot registers in a guild.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "log_lift",
			Description: "Log a strength training / lifting session.",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("minutes", "How many minutes did you lift weights?", true, 1, float64(scoring.MaxActivityMinutes)),
			},
		},
		{
			Name:        "log_run",
			Description: "Log running / cardio by minutes.",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("minutes", "How many minutes of cardio?", true, 1, float64(scoring.MaxActivityMinutes)),
			},
		},
		{
			Name:        "log_steps",
			Description: "Log your steps for today.",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("steps", "How many steps did you walk?", true, 1, float64(scoring.MaxSteps)),
			},
		},
		{
			Name:        "log_sleep",
			Description: "Log your sleep duration for last night (in hours).",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "hours",
					Description: "How many hours did you sleep?",
					Required:    true,
					MinValue:    minValue(0),
					MaxValue:    scoring.MaxSleepHours,
				},
			},
		},
		{
			Name:        "log_protein",
			Description: "Log your protein intake.",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("heavy_meals", "Number of heavy protein meals (chicken/steak/fish/4+ eggs).", true, 0, float64(scoring.MaxProteinMeals)),
				intOpt("shakes", "Number of protein shakes.", true, 0, float64(scoring.MaxProteinShakes)),
			},
		},
		{
			Name:        "log_supplements",
			Description: "Log supplements for today.",
			Options: []*discordgo.ApplicationCommandOption{
				boolOpt("vitamins", "Did you take your multivitamin?"),
				boolOpt("creatine", "Did you take creatine?"),
				boolOpt("magnesium", "Did you take magnesium?"),
				boolOpt("omega3", "Did you take omega-3?"),
			},
		},
		{
			Name:        "log_water",
			Description: "Log your water intake (oz).",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("ounces", "How many ounces of water?", true, 0, float64(scoring.MaxWaterOunces)),
			},
		},
		{
			Name:        "log_alcohol",
			Description: "Log your alcohol intake (drinks).",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("drinks", "How many drinks?", true, 0, float64(scoring.MaxAlcoholDrinks)),
			},
		},
		{
			Name:        "log_pastry",
			Description: "Log pastries/desserts eaten.",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("count", "How many pastries/desserts?", true, 0, float64(scoring.MaxPastries)),
			},
		},
		{
			Name:        "log_fastfood",
			Description: "Log fast-food meals eaten.",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("meals", "How many fast-food meals?", true, 0, float64(scoring.MaxFastFoodMeals)),
			},
		},
		{
			Name:        "daily_summary",
			Description: "See your point breakdown for today.",
		},
		{
			Name:        "leaderboard",
			Description: "Show leaderboard for a date range (default: last 7 days).",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("days", "How many days back from today? (Default 7)", false, 1, 90),
			},
		},
		{
			Name:        "week_summary",
			Description: "See your totals for the last N days (default 7).",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("days", "How many days back from today? (Default 7, max 30)", false, 1, 30),
			},
		},
		{
			Name:        "weekly_winners",
			Description: "Announce weekly winners for the last N days (default 7).",
			Options: []*discordgo.ApplicationCommandOption{
				intOpt("days", "How many days back from today? (Default 7, max 30)", false, 1, 30),
				intOpt("top_n", "How many top players to show? (Default 3, max 10)", false, 1, 10),
			},
		},
		{
			Name:        "streak",
			Description: "See your current and best streak plus badge.",
		},
		{
			Name:        "checkin",
			Description: "Guided daily check-in for all metrics (today).",
		},
		{
			Name:        "yesterday_checkin",
			Description: "Guided check-in for yesterday's metrics.",
		},
		{
			Name:        "quote",
			Description: "Drop a random motivational quote or fact and tag someone to hype them up!",
		},
		{
			Name:        "rules",
			Description: "Show the fitness challenge rules.",
		},
	}
}
