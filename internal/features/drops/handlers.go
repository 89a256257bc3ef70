package drops

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/common"
)

// Handler serves the /quote command.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleQuote posts a random line from the pools and tags a random member.
func (h *Handler) HandleQuote(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		respond(s, i, "This command only works in a server.")
		return
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
		if err != nil {
			log.WithError(err).WithField("guild_id", i.GuildID).Error("quote: fetch guild")
			respond(s, i, "Something went wrong, try again later.")
			return
		}
	}

	mention := ""
	member, err := PickRandomMember(s, guild)
	switch {
	case err == nil:
		mention = member.User.Mention()
	case errors.Is(err, common.ErrNoMembers):
		// Still worth posting the line.
	default:
		log.WithError(err).WithField("guild_id", guild.ID).Warn("quote: pick member")
	}

	respond(s, i, FormatDrop(mention, RandomLine()))
}

// Broadcast posts one drop per guild the session is connected to. A guild
// the bot cannot write to is skipped; one failing guild never blocks the
// rest.
func Broadcast(s *discordgo.Session) {
	for _, guild := range s.State.Guilds {
		channelID, err := PickGeneralChannel(s, guild)
		if err != nil {
			log.WithField("guild_id", guild.ID).Warn("drop: no writable channel, skipping guild")
			continue
		}

		mention := ""
		if member, err := PickRandomMember(s, guild); err == nil {
			mention = member.User.Mention()
		}

		if _, err := s.ChannelMessageSend(channelID, FormatDrop(mention, RandomLine())); err != nil {
			log.WithError(err).WithField("guild_id", guild.ID).Error("drop: send failed")
		}
	}
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.WithError(err).Error("drops: interaction respond")
	}
}
