package config

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ErrRequired = errors.New("require setting.")
	ErrNegative = errors.New("negative setting.")
)

// OverrideSettings are the per-team knobs an administrator may override.
// A nil field means the global configuration value applies.
type OverrideSettings struct {
	MaxUsers           *int `yaml:"max_users"`
	MaxDurationSeconds *int `yaml:"max_duration_seconds"`
}

type OverrideTeam struct {
	Settings *OverrideSettings `yaml:"settings,omitempty"`
}

type Overrides struct {
	Teams map[string]*OverrideTeam `yaml:"teams,omitempty"`
}

// ParseTeamOverrides loads and checks the TeamOverrides yaml block. Unknown
// fields are rejected so a typo does not silently fall back to the defaults.
func ParseTeamOverrides(yamlStr string) (*Overrides, error) {
	ov := &Overrides{}

	if yamlStr == "" {
		return ov, nil
	}

	if err := yaml.UnmarshalStrict([]byte(yamlStr), ov); err != nil {
		return nil, errors.Wrapf(err, "failed to parse team overrides")
	}

	for tm, t := range ov.Teams {
		if t == nil || t.Settings == nil {
			return nil, fmt.Errorf("%w team:%v", ErrRequired, tm)
		}
		if t.Settings.MaxUsers != nil && *t.Settings.MaxUsers <= 0 {
			return nil, fmt.Errorf("%w field:max_users team:%v", ErrNegative, tm)
		}
		if t.Settings.MaxDurationSeconds != nil && *t.Settings.MaxDurationSeconds <= 0 {
			return nil, fmt.Errorf("%w field:max_duration_seconds team:%v", ErrNegative, tm)
		}
	}

	return ov, nil
}

// ForTeam returns the effective settings for a team, falling back to the
// global configuration for any field the override leaves blank.
func (ov *Overrides) ForTeam(teamID string, cfg *Configuration) (maxUsers, maxDurationSeconds int) {
	maxUsers = cfg.MaxUsers
	maxDurationSeconds = cfg.MaxDurationSeconds

	if ov == nil || ov.Teams == nil {
		return maxUsers, maxDurationSeconds
	}

	t, ok := ov.Teams[teamID]
	if !ok || t.Settings == nil {
		return maxUsers, maxDurationSeconds
	}

	if t.Settings.MaxUsers != nil {
		maxUsers = *t.Settings.MaxUsers
	}
	if t.Settings.MaxDurationSeconds != nil {
		maxDurationSeconds = *t.Settings.MaxDurationSeconds
	}

	return maxUsers, maxDurationSeconds
}
