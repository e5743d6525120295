package bot

import (
	pluginapi "github.com/mattermost/mattermost-plugin-api"

	"github.com/ericzzh/mattermost-plugin-burn/server/config"
)

// Bot is the burn bot. It posts and deletes channel messages on behalf of
// the plugin and carries the plugin's logging.
type Bot struct {
	pluginAPI     *pluginapi.Client
	botUserID     string
	configService config.Service
}

// Logger is the log surface consumed by the other packages.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// New creates the bot for the given bot user.
func New(api *pluginapi.Client, botUserID string, configService config.Service) *Bot {
	return &Bot{
		pluginAPI:     api,
		botUserID:     botUserID,
		configService: configService,
	}
}
