// handlers.go answers the ten /log_* commands and
// /daily_summary. Option ranges are declared at command registration and
// enforced by the platform before these handlers run, so values arrive
// already validated.

package logbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/common"
	"github.com/ironkeep/fitness-bot/internal/features/scoring"
)

const saveFailedReply = "❌ Couldn't save that log. Try again in a moment."

// Handler answers the logging slash commands.
type Handler struct {
	svc *Service
}

// NewHandler creates a logging command handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleLogLift logs a strength session for today.
func (h *Handler) HandleLogLift(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	minutes := int(optionMap(i)["minutes"].IntValue())
	pts := scoring.StrengthPoints(minutes)
	h.logAndReply(ctx, s, i, CategoryStrength, float64(minutes), pts,
		fmt.Sprintf("💪 Logged **%d min** of lifting for **%s pts**.", minutes, common.FormatPoints(pts)))
}

// HandleLogRun logs a cardio session by minutes for today.
func (h *Handler) HandleLogRun(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	minutes := int(optionMap(i)["minutes"].IntValue())
	pts := scoring.CardioPoints(minutes)
	h.logAndReply(ctx, s, i, CategoryCardio, float64(minutes), pts,
		fmt.Sprintf("🏃 Logged **%d min** of cardio for **%s pts**.", minutes, common.FormatPoints(pts)))
}

// HandleLogSteps logs today's step count.
func (h *Handler) HandleLogSteps(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	steps := int(optionMap(i)["steps"].IntValue())
	pts := scoring.StepsPoints(steps)
	h.logAndReply(ctx, s, i, CategorySteps, float64(steps), pts,
		fmt.Sprintf("👣 Logged **%d steps** for **%s pts**.", steps, common.FormatPoints(pts)))
}

// HandleLogSleep logs last night's sleep in hours.
func (h *Handler) HandleLogSleep(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	hours := optionMap(i)["hours"].FloatValue()
	pts := scoring.SleepPoints(hours)
	h.logAndReply(ctx, s, i, CategorySleep, hours, pts,
		fmt.Sprintf("😴 Logged **%.1f hours** of sleep for **%s pts**.", hours, common.FormatPoints(pts)))
}

// HandleLogProtein logs heavy protein meals and shakes. The stored value
// is the combined count; points are capped by the scoring engine.
func (h *Handler) HandleLogProtein(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	heavyMeals := int(opts["heavy_meals"].IntValue())
	shakes := int(opts["shakes"].IntValue())
	pts := scoring.ProteinPoints(heavyMeals, shakes)
	h.logAndReply(ctx, s, i, CategoryProtein, float64(heavyMeals+shakes), pts,
		fmt.Sprintf("🍗 Logged **%d heavy meals** and **%d shakes** for **%s pts** (capped at 1.5).",
			heavyMeals, shakes, common.FormatPoints(pts)))
}

// HandleLogSupplements logs the four daily supplements as one entry whose
// value is the count taken.
func (h *Handler) HandleLogSupplements(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	vitamins := opts["vitamins"].BoolValue()
	creatine := opts["creatine"].BoolValue()
	magnesium := opts["magnesium"].BoolValue()
	omega3 := opts["omega3"].BoolValue()

	pts := scoring.SupplementPoints(vitamins, creatine, magnesium, omega3)
	count := scoring.SupplementCount(vitamins, creatine, magnesium, omega3)
	h.logAndReply(ctx, s, i, CategorySupplements, float64(count), pts,
		fmt.Sprintf("💊 Logged **%d** supplements for **%s pts**.", count, common.FormatPoints(pts)))
}

// HandleLogWater logs water intake in ounces.
func (h *Handler) HandleLogWater(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	ounces := int(optionMap(i)["ounces"].IntValue())
	pts := scoring.WaterPoints(ounces)
	h.logAndReply(ctx, s, i, CategoryWater, float64(ounces), pts,
		fmt.Sprintf("💧 Logged **%d oz** of water for **%s pts**.", ounces, common.FormatPoints(pts)))
}

// HandleLogAlcohol logs alcoholic drinks (a penalty).
func (h *Handler) HandleLogAlcohol(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	drinks := int(optionMap(i)["drinks"].IntValue())
	pts := scoring.AlcoholPenalty(drinks)
	h.logAndReply(ctx, s, i, CategoryAlcohol, float64(drinks), pts,
		fmt.Sprintf("🍺 Logged **%d drinks** for **%s pts** (negative is bad 😈).", drinks, common.FormatPoints(pts)))
}

// HandleLogPastry logs pastries / desserts (a penalty).
func (h *Handler) HandleLogPastry(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	count := int(optionMap(i)["count"].IntValue())
	pts := scoring.PastryPenalty(count)
	h.logAndReply(ctx, s, i, CategoryPastry, float64(count), pts,
		fmt.Sprintf("🥐 Logged **%d pastries** for **%s pts** (negative).", count, common.FormatPoints(pts)))
}

// HandleLogFastFood logs fast-food meals (a penalty).
func (h *Handler) HandleLogFastFood(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	meals := int(optionMap(i)["meals"].IntValue())
	pts := scoring.FastFoodPenalty(meals)
	h.logAndReply(ctx, s, i, CategoryFastFood, float64(meals), pts,
		fmt.Sprintf("🍟 Logged **%d fast-food meals** for **%s pts** (negative).", meals, common.FormatPoints(pts)))
}

// HandleDailySummary shows the caller's per-category breakdown and total
// for today.
func (h *Handler) HandleDailySummary(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := commandUser(i)
	date := common.Today()

	breakdown, err := h.svc.DailyBreakdown(ctx, user.ID, date)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("daily summary query failed")
		respond(s, i, "❌ Couldn't load your summary. Try again in a moment.")
		return
	}
	if len(breakdown) == 0 {
		respond(s, i, "You have no logs for today yet.")
		return
	}

	total, err := h.svc.DailyTotal(ctx, user.ID, date)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("daily total query failed")
		respond(s, i, "❌ Couldn't load your summary. Try again in a moment.")
		return
	}

	respond(s, i, FormatDailySummary(date, breakdown, total))
}

// FormatDailySummary renders the /daily_summary reply. Shared with the
// check-in dialog's closing message.
func FormatDailySummary(date string, breakdown []CategoryTotal, total float64) string {
	lines := []string{fmt.Sprintf("📅 Summary for **%s**:", date)}
	for _, ct := range breakdown {
		lines = append(lines, fmt.Sprintf("- **%s**: %s pts", ct.Category, common.FormatPoints(ct.Points)))
	}
	lines = append(lines, fmt.Sprintf("\n**Total:** %s pts", common.FormatPoints(total)))
	return strings.Join(lines, "\n")
}

// logAndReply runs the shared tail of every log command: append the entry
// for today, fetch the fresh total, answer the interaction.
func (h *Handler) logAndReply(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, category Category, value, points float64, headline string) {
	user := commandUser(i)

	total, err := h.svc.Log(ctx, user.ID, user.Username, common.Today(), category, value, points)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id":  user.ID,
			"category": category,
		}).Error("log command failed")
		respond(s, i, saveFailedReply)
		return
	}

	respond(s, i, fmt.Sprintf("%s\nYour total for today is now **%s pts**.", headline, common.FormatPoints(total)))
}

// commandUser returns the invoking user for both guild and DM interactions.
func commandUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// optionMap indexes the interaction's options by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// respond answers an interaction with a plain text message.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.WithError(err).Error("failed to respond to interaction")
	}
}
