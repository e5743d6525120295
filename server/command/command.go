package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/mattermost/mattermost-server/v6/plugin"

	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/pkg/errors"

	"github.com/ericzzh/mattermost-plugin-burn/server/app"
	"github.com/ericzzh/mattermost-plugin-burn/server/bot"
)

const helpText = "######  Burn Plugin - Slash Command Help\n" +
	"* `/burn on` - Turn burn mode on in this team. \n" +
	"* `/burn off` - Turn burn mode off and burn your captured messages. \n" +
	"* `/burn status` - Show your burn mode status. \n" +
	""

// Register is a function that allows the runner to register commands with the mattermost server.
type Register func(*model.Command) error

// RegisterCommands should be called by the plugin to register all necessary commands
func RegisterCommands(registerFunc Register) error {
	return registerFunc(getCommand())
}

func getCommand() *model.Command {
	return &model.Command{
		Trigger:          "burn",
		DisplayName:      "Burn",
		Description:      "Ephemeral message retention",
		AutoComplete:     true,
		AutoCompleteDesc: "Available commands: on, off, status",
		AutoCompleteHint: "[command]",
		AutocompleteData: getAutocompleteData(),
	}
}

func getAutocompleteData() *model.AutocompleteData {
	command := model.NewAutocompleteData("burn", "[command]",
		"Available commands: on, off, status")

	on := model.NewAutocompleteData("on", "", "Turns burn mode on in this team")
	command.AddCommand(on)

	off := model.NewAutocompleteData("off", "", "Turns burn mode off and burns your captured messages")
	command.AddCommand(off)

	status := model.NewAutocompleteData("status", "", "Shows your burn mode status")
	command.AddCommand(status)

	return command
}

// Runner handles commands.
type Runner struct {
	context        *plugin.Context
	args           *model.CommandArgs
	pluginAPI      *pluginapi.Client
	logger         bot.Logger
	poster         bot.Poster
	sessionService app.SessionService
}

// NewCommandRunner creates a command runner.
func NewCommandRunner(ctx *plugin.Context,
	args *model.CommandArgs,
	api *pluginapi.Client,
	logger bot.Logger,
	poster bot.Poster,
	sessionService app.SessionService,
) *Runner {
	return &Runner{
		context:        ctx,
		args:           args,
		pluginAPI:      api,
		logger:         logger,
		poster:         poster,
		sessionService: sessionService,
	}
}

func (r *Runner) isValid() error {
	if r.context == nil || r.args == nil || r.pluginAPI == nil {
		return errors.New("invalid arguments to command.Runner")
	}
	return nil
}

// Execute should be called by the plugin when a command invocation is received from the Mattermost server.
func (r *Runner) Execute() error {
	if err := r.isValid(); err != nil {
		return err
	}

	split := strings.Fields(r.args.Command)
	command := split[0]
	cmd := ""
	if len(split) > 1 {
		cmd = split[1]
	}

	if command != "/burn" {
		return nil
	}

	switch cmd {
	case "on":
		r.actionOn()
	case "off":
		r.actionOff()
	case "status":
		r.actionStatus()
	default:
		r.postCommandResponse(helpText)
	}

	return nil
}

func (r *Runner) postCommandResponse(text string) {
	post := &model.Post{
		Message: text,
	}
	r.poster.EphemeralPost(r.args.UserId, r.args.ChannelId, post)
}

func (r *Runner) actionOn() {
	// a slash command leaves no post behind, so there is no trigger
	// message to capture
	err := r.sessionService.Activate(r.args.UserId, r.args.TeamId, r.args.ChannelId, "")
	if err != nil {
		if reason, ok := app.IsRejection(err); ok {
			r.postCommandResponse(reason)
			return
		}

		txt := fmt.Sprintf("Turning burn mode on failed. %v", err.Error())
		r.logger.Errorf(txt)
		r.postCommandResponse(txt)
		return
	}
}

func (r *Runner) actionOff() {
	err := r.sessionService.Deactivate(r.args.UserId, r.args.TeamId)
	if err != nil {
		if reason, ok := app.IsRejection(err); ok {
			r.postCommandResponse(reason)
			return
		}

		txt := fmt.Sprintf("Turning burn mode off failed. %v", err.Error())
		r.logger.Errorf(txt)
		r.postCommandResponse(txt)
		return
	}
}

func (r *Runner) actionStatus() {
	session, err := r.sessionService.ActiveSession(r.args.UserId)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			r.postCommandResponse("Burn mode is off.")
			return
		}

		txt := fmt.Sprintf("Fetching burn mode status failed. %v", err.Error())
		r.logger.Errorf(txt)
		r.postCommandResponse(txt)
		return
	}

	remaining := time.Until(model.GetTimeForMillis(session.ExpireAt)).Round(time.Second)
	if remaining < 0 {
		remaining = 0
	}

	r.postCommandResponse(fmt.Sprintf("Burn mode is on, expiring in %v.", remaining))
}
