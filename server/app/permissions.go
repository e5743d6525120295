package app

import (
	"strings"

	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"

	"github.com/ericzzh/mattermost-plugin-burn/server/config"
)

// TeamRole classifies a user inside a team.
type TeamRole string

const (
	RoleMember TeamRole = "member"
	RoleAdmin  TeamRole = "admin"
	RoleOwner  TeamRole = "owner"
)

// Dominates reports whether the role outranks a plain member, which is the
// rank the bot acts at. The bot does not burn messages of users above it.
func (r TeamRole) Dominates() bool {
	return r == RoleAdmin || r == RoleOwner
}

// PermissionChecker answers the privilege questions Activate depends on.
type PermissionChecker interface {
	// IsBotPrivileged reports whether the bot can act in the team.
	IsBotPrivileged(teamID string) (bool, error)

	// RoleInTeam classifies the user inside the team.
	RoleInTeam(userID, teamID string) (TeamRole, error)

	// TeamDisplayName resolves a human readable team name, best effort.
	// Falls back to the id.
	TeamDisplayName(teamID string) string

	// UsernameOf resolves the user's mention name, best effort. Falls back
	// to the id.
	UsernameOf(userID string) string
}

type permissionChecker struct {
	pluginAPI     *pluginapi.Client
	configService config.Service
}

func NewPermissionChecker(api *pluginapi.Client, configService config.Service) PermissionChecker {
	return &permissionChecker{
		pluginAPI:     api,
		configService: configService,
	}
}

func (pc *permissionChecker) IsBotPrivileged(teamID string) (bool, error) {
	botID := pc.configService.GetConfiguration().BotUserID

	_, err := pc.pluginAPI.Team.GetMember(teamID, botID)
	if err != nil {
		if errors.Is(err, pluginapi.ErrNotFound) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to get bot team member. team:%s", teamID)
	}

	return true, nil
}

func (pc *permissionChecker) RoleInTeam(userID, teamID string) (TeamRole, error) {
	usr, err := pc.pluginAPI.User.Get(userID)
	if err != nil {
		return RoleMember, errors.Wrapf(err, "failed to get user. user:%s", userID)
	}

	if strings.Contains(usr.Roles, model.SystemAdminRoleId) {
		return RoleOwner, nil
	}

	member, err := pc.pluginAPI.Team.GetMember(teamID, userID)
	if err != nil {
		return RoleMember, errors.Wrapf(err, "failed to get team member. user:%s team:%s", userID, teamID)
	}

	if member.SchemeAdmin || strings.Contains(member.Roles, model.TeamAdminRoleId) {
		return RoleAdmin, nil
	}

	return RoleMember, nil
}

func (pc *permissionChecker) TeamDisplayName(teamID string) string {
	tm, err := pc.pluginAPI.Team.Get(teamID)
	if err != nil {
		return teamID
	}

	if tm.DisplayName != "" {
		return tm.DisplayName
	}
	return tm.Name
}

func (pc *permissionChecker) UsernameOf(userID string) string {
	usr, err := pc.pluginAPI.User.Get(userID)
	if err != nil {
		return userID
	}
	return usr.Username
}
