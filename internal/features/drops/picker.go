package drops

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ironkeep/fitness-bot/internal/common"
)

// RandomLine picks a random pool, then a random line from it.
func RandomLine() string {
	pool := pools[rand.Intn(len(pools))]
	return pool[rand.Intn(len(pool))]
}

// FormatDrop builds the message posted for a drop. The mention is optional:
// guilds with no pickable member still get the line itself.
func FormatDrop(mention, line string) string {
	if mention == "" {
		return line + " 🏋️"
	}
	return mention + " " + line + " 🏋️"
}

// generalChannelID picks the channel a drop lands in:
// a text channel named "general", then the system channel, then the first
// text channel the bot can write to. canSend is the permission check.
func generalChannelID(channels []*discordgo.Channel, systemChannelID string, canSend func(channelID string) bool) string {
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		if strings.EqualFold(ch.Name, "general") && canSend(ch.ID) {
			return ch.ID
		}
	}
	if systemChannelID != "" && canSend(systemChannelID) {
		return systemChannelID
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && canSend(ch.ID) {
			return ch.ID
		}
	}
	return ""
}

// humanMembers filters out bots.
func humanMembers(members []*discordgo.Member) []*discordgo.Member {
	humans := make([]*discordgo.Member, 0, len(members))
	for _, m := range members {
		if m.User == nil || m.User.Bot {
			continue
		}
		humans = append(humans, m)
	}
	return humans
}

func botCanSend(s *discordgo.Session, channelID string) bool {
	if s.State == nil || s.State.User == nil {
		return false
	}
	perms, err := s.State.UserChannelPermissions(s.State.User.ID, channelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionSendMessages != 0
}

// PickGeneralChannel returns the channel ID a drop should be posted to in
// the guild, or common.ErrNoWritableChannel when the bot cannot write
// anywhere in it.
func PickGeneralChannel(s *discordgo.Session, guild *discordgo.Guild) (string, error) {
	id := generalChannelID(guild.Channels, guild.SystemChannelID, func(channelID string) bool {
		return botCanSend(s, channelID)
	})
	if id == "" {
		return "", common.ErrNoWritableChannel
	}
	return id, nil
}

// PickRandomMember returns a random human member of the guild. When the
// state cache holds no members yet it falls back to the REST API.
func PickRandomMember(s *discordgo.Session, guild *discordgo.Guild) (*discordgo.Member, error) {
	members := guild.Members
	if len(members) == 0 {
		fetched, err := s.GuildMembers(guild.ID, "", 1000)
		if err != nil {
			return nil, fmt.Errorf("list guild %s members: %w", guild.ID, err)
		}
		members = fetched
	}
	humans := humanMembers(members)
	if len(humans) == 0 {
		return nil, common.ErrNoMembers
	}
	return humans[rand.Intn(len(humans))], nil
}
