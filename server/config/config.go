package config

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Configuration holds the plugin settings. All durations are whole seconds,
// as entered in the system console.
type Configuration struct {
	BotUserID string `json:"bot_user_id"`

	// RecallDelaySeconds is the grace period before the first deletion of
	// a burn.
	RecallDelaySeconds int `json:"recall_delay_seconds"`

	// MaxDurationSeconds is the session lifetime before automatic expiry.
	MaxDurationSeconds int `json:"max_duration_seconds"`

	// MaxUsers is the maximum count of simultaneous sessions per team.
	MaxUsers int `json:"max_users"`

	// BatchRecallIntervalSeconds is the pause between successive deletions
	// within a burn.
	BatchRecallIntervalSeconds int `json:"batch_recall_interval_seconds"`

	// TeamOverrides is a yaml block overriding MaxUsers and
	// MaxDurationSeconds for individual teams. See ParseTeamOverrides.
	TeamOverrides string `json:"team_overrides"`
}

// Clone deep-copies the configuration.
func (c *Configuration) Clone() *Configuration {
	clone := *c
	return &clone
}

// ToMap converts the configuration to the shape SavePluginConfig expects.
func (c *Configuration) ToMap() (map[string]interface{}, error) {
	var out map[string]interface{}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal configuration")
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal configuration")
	}

	return out, nil
}
