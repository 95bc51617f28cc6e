package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	BotTokenFormat = "Bot %s"

	applicationCommandsFormat = "%s/api/v%s/applications/%s/commands"
	guildCommandsFormat       = "%s/api/v%s/applications/%s/guilds/%s/commands"
)

// Ensure SessionIFace is implemented by discordgo.Session
var _ SessionIFace = (*discordgo.Session)(nil)

type SessionIFace interface {
	RequestWithBucketID(method string, urlStr string, data interface{}, bucketID string, options ...discordgo.RequestOption) ([]byte, error)
}

// GlobalCommandsEndpoint is the URL of an application's global command set.
func GlobalCommandsEndpoint(baseURL string, apiVersion string, appID string) string {
	return fmt.Sprintf(applicationCommandsFormat, strings.TrimSuffix(baseURL, "/"), apiVersion, appID)
}

// GuildCommandsEndpoint is the URL of an application's command set in one guild.
func GuildCommandsEndpoint(baseURL string, apiVersion string, appID string, guildID string) string {
	return fmt.Sprintf(guildCommandsFormat, strings.TrimSuffix(baseURL, "/"), apiVersion, appID, guildID)
}
