// handlers.go answers /checkin and /yesterday_checkin.

package checkin

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/common"
)

// Handler starts the guided dialog.
type Handler struct {
	manager *Manager
}

// NewHandler creates a check-in command handler.
func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// HandleCheckin starts the dialog for today.
func (h *Handler) HandleCheckin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.start(ctx, s, i, common.Today(), "today")
}

// HandleCheckinYesterday starts the dialog logging toward yesterday.
func (h *Handler) HandleCheckinYesterday(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.start(ctx, s, i, common.Yesterday(), "yesterday")
}

func (h *Handler) start(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, date, label string) {
	if i.Member == nil {
		respond(s, i, "This command only works in a server.")
		return
	}
	user := i.Member.User

	err := h.manager.Start(ctx, i.ChannelID, user.ID, user.Mention(), user.Username, date, label)
	if errors.Is(err, common.ErrCheckinActive) {
		respond(s, i, "⏳ You already have a check-in running here — answer it or wait for it to time out.")
		return
	}
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("failed to start check-in")
		respond(s, i, "❌ Couldn't start the check-in. Try again in a moment.")
		return
	}

	respond(s, i, fmt.Sprintf(
		"✅ Starting check-in for **%s** (%s). I'll ask you a few questions.\n"+
			"You can answer with a number or type `skip` to use the default (usually 0).",
		date, label,
	))
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
