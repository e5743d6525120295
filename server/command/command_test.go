package command_test

import (
	"strings"
	"testing"

	gomock "github.com/golang/mock/gomock"
	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/mattermost/mattermost-server/v6/plugin"
	"github.com/mattermost/mattermost-server/v6/plugin/plugintest"
	"github.com/stretchr/testify/require"

	"github.com/ericzzh/mattermost-plugin-burn/server/app"
	mock_app "github.com/ericzzh/mattermost-plugin-burn/server/app/mocks"
	mock_bot "github.com/ericzzh/mattermost-plugin-burn/server/bot/mocks"
	"github.com/ericzzh/mattermost-plugin-burn/server/command"
)

type cmdEnv struct {
	logger   *mock_bot.MockLogger
	poster   *mock_bot.MockPoster
	sessions *mock_app.MockSessionService
	api      *pluginapi.Client
}

func setupCmd(t *testing.T) *cmdEnv {
	t.Helper()

	ctrl := gomock.NewController(t)

	e := &cmdEnv{
		logger:   mock_bot.NewMockLogger(ctrl),
		poster:   mock_bot.NewMockPoster(ctrl),
		sessions: mock_app.NewMockSessionService(ctrl),
		api:      pluginapi.NewClient(&plugintest.API{}, &plugintest.Driver{}),
	}

	e.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	e.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return e
}

func (e *cmdEnv) run(t *testing.T, commandLine string) {
	t.Helper()

	args := &model.CommandArgs{
		Command:   commandLine,
		UserId:    "user1",
		TeamId:    "tm1",
		ChannelId: "ch1",
	}

	r := command.NewCommandRunner(&plugin.Context{}, args, e.api, e.logger, e.poster, e.sessions)
	require.NoError(t, r.Execute())
}

// ephemeralContaining matches the ephemeral response post by substring.
func ephemeralContaining(substr string) gomock.Matcher {
	return ephemeralMatcher{substr: substr}
}

type ephemeralMatcher struct {
	substr string
}

func (m ephemeralMatcher) Matches(x interface{}) bool {
	post, ok := x.(*model.Post)
	return ok && strings.Contains(post.Message, m.substr)
}

func (m ephemeralMatcher) String() string {
	return "ephemeral post containing " + m.substr
}

func TestBurnOnActivates(t *testing.T) {
	e := setupCmd(t)

	e.sessions.EXPECT().Activate("user1", "tm1", "ch1", "").Return(nil)

	e.run(t, "/burn on")
}

func TestBurnOnPostsRejectionReason(t *testing.T) {
	e := setupCmd(t)

	e.sessions.EXPECT().Activate("user1", "tm1", "ch1", "").
		Return(&app.RejectionError{Reason: "Burn mode is not available to team administrators."})
	e.poster.EXPECT().EphemeralPost("user1", "ch1", ephemeralContaining("not available"))

	e.run(t, "/burn on")
}

func TestBurnOffDeactivates(t *testing.T) {
	e := setupCmd(t)

	e.sessions.EXPECT().Deactivate("user1", "tm1").Return(nil)

	e.run(t, "/burn off")
}

func TestBurnOffPostsRejectionReason(t *testing.T) {
	e := setupCmd(t)

	e.sessions.EXPECT().Deactivate("user1", "tm1").
		Return(&app.RejectionError{Reason: "You don't have burn mode on."})
	e.poster.EXPECT().EphemeralPost("user1", "ch1", ephemeralContaining("don't have burn mode on"))

	e.run(t, "/burn off")
}

func TestBurnStatusWithoutSession(t *testing.T) {
	e := setupCmd(t)

	e.sessions.EXPECT().ActiveSession("user1").Return(nil, app.ErrNotFound)
	e.poster.EXPECT().EphemeralPost("user1", "ch1", ephemeralContaining("Burn mode is off."))

	e.run(t, "/burn status")
}

func TestBurnStatusWithSession(t *testing.T) {
	e := setupCmd(t)

	e.sessions.EXPECT().ActiveSession("user1").Return(&app.RetentionSession{
		UserID:   "user1",
		TeamID:   "tm1",
		ExpireAt: model.GetMillis() + 30*60*1000,
	}, nil)
	e.poster.EXPECT().EphemeralPost("user1", "ch1", ephemeralContaining("Burn mode is on"))

	e.run(t, "/burn status")
}

func TestUnknownSubcommandPostsHelp(t *testing.T) {
	e := setupCmd(t)

	e.poster.EXPECT().EphemeralPost("user1", "ch1", ephemeralContaining("Slash Command Help"))

	e.run(t, "/burn wat")
}
