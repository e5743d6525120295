package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overridesYAML = `
teams:
  tm1:
    settings:
      max_users: 5
  tm2:
    settings:
      max_users: 1
      max_duration_seconds: 600
`

func globalConfig() *Configuration {
	return &Configuration{
		MaxUsers:           2,
		MaxDurationSeconds: 3600,
	}
}

func TestParseTeamOverrides(t *testing.T) {
	ov, err := ParseTeamOverrides(overridesYAML)
	require.NoError(t, err)
	require.Len(t, ov.Teams, 2)

	require.NotNil(t, ov.Teams["tm1"].Settings.MaxUsers)
	assert.Equal(t, 5, *ov.Teams["tm1"].Settings.MaxUsers)
	assert.Nil(t, ov.Teams["tm1"].Settings.MaxDurationSeconds)

	assert.Equal(t, 600, *ov.Teams["tm2"].Settings.MaxDurationSeconds)
}

func TestParseTeamOverridesEmpty(t *testing.T) {
	ov, err := ParseTeamOverrides("")
	require.NoError(t, err)
	assert.Nil(t, ov.Teams)
}

func TestParseTeamOverridesRejectsUnknownField(t *testing.T) {
	_, err := ParseTeamOverrides(`
teams:
  tm1:
    settings:
      max_user: 5
`)
	require.Error(t, err)
}

func TestParseTeamOverridesRejectsMissingSettings(t *testing.T) {
	_, err := ParseTeamOverrides(`
teams:
  tm1:
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequired)
}

func TestParseTeamOverridesRejectsNonPositiveValues(t *testing.T) {
	_, err := ParseTeamOverrides(`
teams:
  tm1:
    settings:
      max_users: -1
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegative)

	_, err = ParseTeamOverrides(`
teams:
  tm1:
    settings:
      max_duration_seconds: 0
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestForTeam(t *testing.T) {
	ov, err := ParseTeamOverrides(overridesYAML)
	require.NoError(t, err)

	cfg := globalConfig()

	maxUsers, maxDuration := ov.ForTeam("tm1", cfg)
	assert.Equal(t, 5, maxUsers)
	assert.Equal(t, 3600, maxDuration)

	maxUsers, maxDuration = ov.ForTeam("tm2", cfg)
	assert.Equal(t, 1, maxUsers)
	assert.Equal(t, 600, maxDuration)

	// a team without an override keeps the global limits
	maxUsers, maxDuration = ov.ForTeam("tm3", cfg)
	assert.Equal(t, 2, maxUsers)
	assert.Equal(t, 3600, maxDuration)
}

func TestForTeamNilOverrides(t *testing.T) {
	var ov *Overrides

	maxUsers, maxDuration := ov.ForTeam("tm1", globalConfig())
	assert.Equal(t, 2, maxUsers)
	assert.Equal(t, 3600, maxDuration)
}

func TestConfigurationToMap(t *testing.T) {
	cfg := &Configuration{
		BotUserID:          "bot1",
		MaxUsers:           2,
		MaxDurationSeconds: 3600,
	}

	m, err := cfg.ToMap()
	require.NoError(t, err)

	assert.Equal(t, "bot1", m["bot_user_id"])
	assert.EqualValues(t, 2, m["max_users"])
}
