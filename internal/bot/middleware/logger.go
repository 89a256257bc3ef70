package middleware

import (
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// LogCommand logs an incoming slash command invocation.
func LogCommand(i *discordgo.InteractionCreate) {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	user := i.User
	if i.Member != nil {
		user = i.Member.User
	}
	fields := log.Fields{
		"command":    i.ApplicationCommandData().Name,
		"guild_id":   i.GuildID,
		"channel_id": i.ChannelID,
		"time":       time.Now().Format("15:04:05"),
	}
	if user != nil {
		fields["user_id"] = user.ID
		fields["username"] = user.Username
	}
	log.WithFields(fields).Debug("incoming command")
}

// LogMessage logs an incoming guild message, truncating long content.
func LogMessage(m *discordgo.MessageCreate) {
	if m == nil || m.Author == nil {
		return
	}

	text := m.Content
	if len(text) > 50 {
		text = text[:50] + "..."
	}

	log.WithFields(log.Fields{
		"user_id":    m.Author.ID,
		"channel_id": m.ChannelID,
		"username":   m.Author.Username,
		"text":       text,
	}).Debug("incoming message")
}
