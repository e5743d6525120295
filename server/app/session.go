package app

import (
	"time"

	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"

	"github.com/ericzzh/mattermost-plugin-burn/server/bot"
	"github.com/ericzzh/mattermost-plugin-burn/server/config"
)

const (
	activationNotice = "@%s turned burn mode on. Everything posted here will go up in smoke within %s."
	closingNotice    = "@%s turned burn mode off. Burning the captured messages shortly."
	expiryNotice     = "Burn mode for @%s reached its maximum duration. Burning the captured messages shortly."
	completionNotice = "Burned %d message(s) for @%s."
)

// SessionService is the burn mode lifecycle: activation, deactivation,
// capture, burn and startup recovery.
type SessionService interface {
	// Activate opts the user into burn mode in the team. A failed
	// precondition is returned as a *RejectionError.
	Activate(userID, teamID, channelID, triggerPostID string) error

	// Deactivate ends the user's session and burns it asynchronously.
	Deactivate(userID, teamID string) error

	// ActiveSession returns the user's session in any team, ErrNotFound
	// when there is none.
	ActiveSession(userID string) (*RetentionSession, error)

	// ActiveSessions lists all sessions, for the status surfaces.
	ActiveSessions() ([]RetentionSession, error)

	// Burn removes the session and deletes its captured messages. Safe to
	// call again for an already burned session.
	Burn(userID, teamID, channelID string)

	// CapturePost appends the post to the ledger iff its author holds an
	// active session in the team. Best effort.
	CapturePost(post *model.Post, teamID string)

	// Recover reloads sessions at startup and re-arms or burns them.
	Recover() error
}

type sessionService struct {
	store         SessionStore
	poster        bot.Poster
	logger        bot.Logger
	permissions   PermissionChecker
	configService config.Service
	scheduler     *Scheduler

	// seams for the timing tests
	now   func() time.Time
	sleep func(time.Duration)
}

func NewSessionService(
	store SessionStore,
	poster bot.Poster,
	logger bot.Logger,
	permissions PermissionChecker,
	configService config.Service,
) SessionService {
	return &sessionService{
		store:         store,
		poster:        poster,
		logger:        logger,
		permissions:   permissions,
		configService: configService,
		scheduler:     NewScheduler(logger),
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

func (s *sessionService) Activate(userID, teamID, channelID, triggerPostID string) error {
	if teamID == "" {
		return rejectf("Burn mode can only be turned on inside a team.")
	}

	privileged, err := s.permissions.IsBotPrivileged(teamID)
	if err != nil {
		return errors.Wrapf(err, "failed to check bot privilege. team:%s", teamID)
	}
	if !privileged {
		return rejectf("The burn bot is not set up in this team. Ask an administrator to add it.")
	}

	role, err := s.permissions.RoleInTeam(userID, teamID)
	if err != nil {
		return errors.Wrapf(err, "failed to check user role. user:%s team:%s", userID, teamID)
	}
	if role.Dominates() {
		return rejectf("Burn mode is not available to team administrators.")
	}

	existing, err := s.store.GetSession(userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Wrapf(err, "failed to look up existing session. user:%s", userID)
	}
	if existing != nil {
		return rejectf("You already have burn mode on in team %s. Turn it off there first.",
			s.permissions.TeamDisplayName(existing.TeamID))
	}

	maxUsers, maxDurationSeconds := s.teamLimits(teamID)

	count, err := s.store.CountSessionsForTeam(teamID)
	if err != nil {
		return errors.Wrapf(err, "failed to count team sessions. team:%s", teamID)
	}
	if count >= maxUsers {
		return rejectf("This team already has %d users in burn mode. Try again later.", count)
	}

	maxDuration := time.Duration(maxDurationSeconds) * time.Second
	now := s.now()

	session := RetentionSession{
		UserID:     userID,
		TeamID:     teamID,
		ChannelID:  channelID,
		ActivateAt: model.GetMillisForTime(now),
		ExpireAt:   model.GetMillisForTime(now.Add(maxDuration)),
	}

	// the lookup and count above only shape the rejection messages; the
	// store enforces both limits atomically against concurrent activations
	if err := s.store.CreateSession(session, maxUsers); err != nil {
		if errors.Is(err, ErrSessionExists) {
			return rejectf("You already have burn mode on. Turn it off first.")
		}
		if errors.Is(err, ErrTeamFull) {
			return rejectf("This team already has %d users in burn mode. Try again later.", maxUsers)
		}
		return errors.Wrapf(err, "failed to create session. user:%s team:%s", userID, teamID)
	}

	// the triggering message burns with everything else
	if triggerPostID != "" {
		s.capture(triggerPostID, userID, teamID, channelID)
	}

	s.armExpiry(userID, teamID, channelID, maxDuration)

	s.postCaptured(channelID, userID, teamID, activationNotice, s.username(userID), maxDuration)

	s.logger.Infof("burn: session activated. user:%s team:%s expires:%v", userID, teamID, maxDuration)
	return nil
}

func (s *sessionService) Deactivate(userID, teamID string) error {
	session, err := s.store.GetSession(userID)
	if errors.Is(err, ErrNotFound) {
		return rejectf("You don't have burn mode on.")
	}
	if err != nil {
		return errors.Wrapf(err, "failed to look up session. user:%s", userID)
	}

	if session.TeamID != teamID {
		return rejectf("Your burn mode is on in team %s. Turn it off there.",
			s.permissions.TeamDisplayName(session.TeamID))
	}

	s.postCaptured(session.ChannelID, userID, teamID, closingNotice, s.username(userID))

	// cancel before burning so a racing expiry can not post a second notice
	s.scheduler.Cancel(userID, teamID)

	go s.Burn(userID, teamID, session.ChannelID)

	s.logger.Infof("burn: session deactivated. user:%s team:%s", userID, teamID)
	return nil
}

func (s *sessionService) ActiveSession(userID string) (*RetentionSession, error) {
	return s.store.GetSession(userID)
}

func (s *sessionService) ActiveSessions() ([]RetentionSession, error) {
	return s.store.GetAllSessions()
}

func (s *sessionService) armExpiry(userID, teamID, channelID string, d time.Duration) {
	s.scheduler.Arm(userID, teamID, d, func() {
		s.postCaptured(channelID, userID, teamID, expiryNotice, s.username(userID))
		s.Burn(userID, teamID, channelID)
	})
}

// teamLimits resolves MaxUsers and MaxDurationSeconds for the team,
// applying the yaml overrides. A broken overrides block falls back to the
// global values.
func (s *sessionService) teamLimits(teamID string) (maxUsers, maxDurationSeconds int) {
	cfg := s.configService.GetConfiguration()

	ov, err := config.ParseTeamOverrides(cfg.TeamOverrides)
	if err != nil {
		s.logger.Errorf("burn: invalid team overrides, using global limits. error:%v", err)
		return cfg.MaxUsers, cfg.MaxDurationSeconds
	}

	return ov.ForTeam(teamID, cfg)
}

// postCaptured posts a notice as the bot and captures it so the notice
// burns together with the user's messages. Both steps are best effort.
func (s *sessionService) postCaptured(channelID, userID, teamID, format string, args ...interface{}) {
	post, err := s.poster.PostMessage(channelID, format, args...)
	if err != nil {
		s.logger.Errorf("burn: failed to post notice. channel:%s error:%v", channelID, err)
		return
	}

	s.capture(post.Id, userID, teamID, channelID)
}

func (s *sessionService) capture(postID, userID, teamID, channelID string) {
	err := s.store.CaptureMessage(CapturedMessage{
		PostID:    postID,
		UserID:    userID,
		TeamID:    teamID,
		ChannelID: channelID,
		CreateAt:  model.GetMillisForTime(s.now()),
	})
	if err != nil {
		s.logger.Errorf("burn: failed to capture message. post:%s user:%s error:%v", postID, userID, err)
	}
}

func (s *sessionService) username(userID string) string {
	return s.permissions.UsernameOf(userID)
}
