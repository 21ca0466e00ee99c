package discord

import (
	"github.com/bwmarrin/discordgo"
)

// interactionUser is the member's user in a guild, the user in a DM.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
