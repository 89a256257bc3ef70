package drops

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func textChannel(id, name string) *discordgo.Channel {
	return &discordgo.Channel{ID: id, Name: name, Type: discordgo.ChannelTypeGuildText}
}

func TestGeneralChannelPrefersGeneral(t *testing.T) {
	channels := []*discordgo.Channel{
		textChannel("100", "random"),
		textChannel("200", "General"),
		textChannel("300", "fitness"),
	}
	allow := func(string) bool { return true }

	require.Equal(t, "200", generalChannelID(channels, "300", allow))
}

func TestGeneralChannelFallsBackToSystemChannel(t *testing.T) {
	channels := []*discordgo.Channel{
		textChannel("100", "random"),
		textChannel("300", "announcements"),
	}
	allow := func(string) bool { return true }

	require.Equal(t, "300", generalChannelID(channels, "300", allow))
}

func TestGeneralChannelSkipsUnwritable(t *testing.T) {
	channels := []*discordgo.Channel{
		textChannel("100", "general"),
		textChannel("200", "random"),
	}
	writable := func(id string) bool { return id == "200" }

	require.Equal(t, "200", generalChannelID(channels, "100", writable))
}

func TestGeneralChannelSkipsVoiceChannels(t *testing.T) {
	channels := []*discordgo.Channel{
		{ID: "100", Name: "general", Type: discordgo.ChannelTypeGuildVoice},
		textChannel("200", "chat"),
	}
	allow := func(string) bool { return true }

	require.Equal(t, "200", generalChannelID(channels, "", allow))
}

func TestGeneralChannelNoneWritable(t *testing.T) {
	channels := []*discordgo.Channel{textChannel("100", "general")}
	deny := func(string) bool { return false }

	require.Empty(t, generalChannelID(channels, "100", deny))
}

func TestHumanMembersFiltersBots(t *testing.T) {
	members := []*discordgo.Member{
		{User: &discordgo.User{ID: "1", Bot: true}},
		{User: &discordgo.User{ID: "2"}},
		{User: nil},
		{User: &discordgo.User{ID: "3"}},
	}

	humans := humanMembers(members)
	require.Len(t, humans, 2)
	require.Equal(t, "2", humans[0].User.ID)
	require.Equal(t, "3", humans[1].User.ID)
}

func TestFormatDrop(t *testing.T) {
	require.Equal(t, "<@1> stay hard 🏋️", FormatDrop("<@1>", "stay hard"))
	require.Equal(t, "stay hard 🏋️", FormatDrop("", "stay hard"))
}

func TestRandomLineComesFromPools(t *testing.T) {
	all := make(map[string]struct{})
	for _, pool := range pools {
		require.NotEmpty(t, pool)
		for _, line := range pool {
			require.NotEmpty(t, strings.TrimSpace(line))
			all[line] = struct{}{}
		}
	}
	for i := 0; i < 50; i++ {
		_, ok := all[RandomLine()]
		require.True(t, ok)
	}
}
