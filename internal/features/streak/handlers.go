// handlers.go answers /streak.

package streak

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Handler answers the streak slash command.
type Handler struct {
	svc *Service
}

// NewHandler creates a streak command handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleStreak shows the caller's current and best streak plus badge.
func (h *Handler) HandleStreak(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := i.User
	if i.Member != nil {
		user = i.Member.User
	}

	current, best, err := h.svc.ForUser(ctx, user.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("streak lookup failed")
		respond(s, i, "❌ Couldn't load your streak. Try again in a moment.")
		return
	}

	respond(s, i, FormatStreak(current, best))
}

// FormatStreak renders the streak block shared by /streak and
// /week_summary.
func FormatStreak(current, best int) string {
	return fmt.Sprintf(
		"🔥 **Current streak** (≥%.0f pts/day): `%d days`\n"+
			"🏅 **Best streak (last %d days)**: `%d days`\n"+
			"🎖️ **Badge:** %s",
		GoodDayThreshold, current, WindowDays, best, Badge(current),
	)
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
