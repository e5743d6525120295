package app

import (
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
)

// Recover rebuilds the in-memory schedule from the durable session records.
// It runs once when the plugin becomes ready. Sessions whose expiry is
// still ahead are re-armed with the remaining delay; sessions that expired
// while the plugin was down burn immediately. Either way each session ends
// up where a continuously running plugin would have taken it.
func (s *sessionService) Recover() error {
	sessions, err := s.store.GetAllSessions()
	if err != nil {
		return errors.Wrapf(err, "failed to load sessions for recovery")
	}

	now := s.now()

	for _, session := range sessions {
		session := session
		expiry := model.GetTimeForMillis(session.ExpireAt)

		if expiry.After(now) {
			s.armExpiry(session.UserID, session.TeamID, session.ChannelID, expiry.Sub(now))
			continue
		}

		s.logger.Infof("burn: session expired while down, burning. user:%s team:%s", session.UserID, session.TeamID)
		go func() {
			s.postCaptured(session.ChannelID, session.UserID, session.TeamID, expiryNotice, s.username(session.UserID))
			s.Burn(session.UserID, session.TeamID, session.ChannelID)
		}()
	}

	s.logger.Infof("burn: recovery completed. sessions:%d", len(sessions))
	return nil
}
