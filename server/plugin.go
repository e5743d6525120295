package main

import (
	"encoding/json"
	"net/http"

	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/mattermost/mattermost-server/v6/plugin"

	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/pkg/errors"

	"github.com/ericzzh/mattermost-plugin-burn/server/app"
	"github.com/ericzzh/mattermost-plugin-burn/server/bot"
	"github.com/ericzzh/mattermost-plugin-burn/server/command"
	"github.com/ericzzh/mattermost-plugin-burn/server/config"
	"github.com/ericzzh/mattermost-plugin-burn/server/sqlstore"
)

// Plugin implements the interface expected by the Mattermost server to communicate between the server and plugin processes.
type Plugin struct {
	plugin.MattermostPlugin
	config         *config.ServiceImpl
	pluginAPI      *pluginapi.Client
	bot            *bot.Bot
	sessionService app.SessionService
}

// See https://developers.mattermost.com/extend/plugins/server/reference/
func (p *Plugin) OnActivate() error {
	pluginAPIClient := pluginapi.NewClient(p.API, p.Driver)
	p.pluginAPI = pluginAPIClient

	p.config = config.NewConfigService(pluginAPIClient, manifest)

	botID, ensureBotError := pluginAPIClient.Bot.EnsureBot(&model.Bot{
		Username:    "burn",
		DisplayName: "Burn Plugin Bot",
		Description: "A bot account created by the burn plugin.",
	})
	if ensureBotError != nil {
		return errors.Wrap(ensureBotError, "failed to ensure burn bot.")
	}

	err := p.config.UpdateConfiguration(func(c *config.Configuration) {
		c.BotUserID = botID
	})
	if err != nil {
		return errors.Wrapf(err, "failed save bot to config")
	}

	apiClient := sqlstore.NewClient(pluginAPIClient)
	p.bot = bot.New(pluginAPIClient, p.config.GetConfiguration().BotUserID, p.config)

	sqlStore, err := sqlstore.New(apiClient, p.bot)
	if err != nil {
		return errors.Wrapf(err, "failed creating the SQL store")
	}

	if err = command.RegisterCommands(p.API.RegisterCommand); err != nil {
		return errors.Wrapf(err, "failed register commands")
	}

	sessionStore := sqlstore.NewSessionStore(apiClient, p.bot, sqlStore)
	permissions := app.NewPermissionChecker(pluginAPIClient, p.config)
	p.sessionService = app.NewSessionService(sessionStore, p.bot, p.bot, permissions, p.config)

	// pick up sessions that were armed, or expired, while we were down
	if err := p.sessionService.Recover(); err != nil {
		return errors.Wrapf(err, "failed to recover retention sessions")
	}

	return nil
}

// MessageHasBeenPosted feeds every inbound post to the capture path. The
// bot's own notices are captured explicitly by the session service, not
// here.
func (p *Plugin) MessageHasBeenPosted(c *plugin.Context, post *model.Post) {
	if p.sessionService == nil {
		return
	}

	if post.UserId == p.config.GetConfiguration().BotUserID {
		return
	}

	channel, err := p.pluginAPI.Channel.Get(post.ChannelId)
	if err != nil {
		p.bot.Errorf("burn: failed to resolve channel for capture. channel:%s error:%v", post.ChannelId, err)
		return
	}

	p.sessionService.CapturePost(post, channel.TeamId)
}

func (p *Plugin) ExecuteCommand(c *plugin.Context, args *model.CommandArgs) (*model.CommandResponse, *model.AppError) {
	runner := command.NewCommandRunner(c, args, pluginapi.NewClient(p.API, p.Driver), p.bot, p.bot, p.sessionService)

	if err := runner.Execute(); err != nil {
		return nil, model.NewAppError("Burn.ExecuteCommand", "app.command.execute.error", nil, err.Error(), http.StatusInternalServerError)
	}

	return &model.CommandResponse{}, nil
}

type statusResponse struct {
	TotalSessions int            `json:"total_sessions"`
	Teams         map[string]int `json:"teams"`
}

// ServeHTTP exposes a small operator surface. GET /status reports the
// active session counts; burnctl consumes it.
func (p *Plugin) ServeHTTP(c *plugin.Context, w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/status" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	if p.sessionService == nil {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}

	sessions, err := p.sessionService.ActiveSessions()
	if err != nil {
		p.bot.Errorf("burn: failed to list sessions for status. error:%v", err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	res := statusResponse{
		TotalSessions: len(sessions),
		Teams:         map[string]int{},
	}
	for _, s := range sessions {
		res.Teams[s.TeamID]++
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		p.bot.Errorf("burn: failed to write status response. error:%v", err)
	}
}

// OnConfigurationChange handles any change in the configuration.
func (p *Plugin) OnConfigurationChange() error {
	if p.config == nil {
		return nil
	}

	return p.config.OnConfigurationChange()
}
