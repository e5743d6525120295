package app

import (
	"time"
)

// Burn removes the session record for (user, team) and deletes every
// captured message, oldest first, pacing the deletions.
//
// Session removal is idempotent, so a burn racing a second burn for the
// same session degrades to a no-op on whichever side finds the ledger
// already empty. A failure to load the ledger aborts the burn and leaves
// the entries in place for a future pass. A failure to delete one message
// never aborts the batch; the entry stays in the ledger.
func (s *sessionService) Burn(userID, teamID, channelID string) {
	cfg := s.configService.GetConfiguration()
	recallDelay := time.Duration(cfg.RecallDelaySeconds) * time.Second
	interval := time.Duration(cfg.BatchRecallIntervalSeconds) * time.Second

	if err := s.store.RemoveSession(userID, teamID); err != nil {
		s.logger.Errorf("burn: failed to remove session. user:%s team:%s error:%v", userID, teamID, err)
	}

	msgs, err := s.store.GetMessages(userID, teamID)
	if err != nil {
		s.logger.Errorf("burn: failed to load the ledger, aborting. user:%s team:%s error:%v", userID, teamID, err)
		return
	}

	if len(msgs) == 0 {
		s.logger.Debugf("burn: nothing to burn. user:%s team:%s", userID, teamID)
		return
	}

	s.logger.Infof("burn: burning %d message(s). user:%s team:%s delay:%v interval:%v",
		len(msgs), userID, teamID, recallDelay, interval)

	// grace period: the user gets to watch the fuse
	s.sleep(recallDelay)

	var deleted int
	for i, msg := range msgs {
		if i > 0 {
			s.sleep(interval)
		}

		if err := s.poster.DeletePost(msg.PostID); err != nil {
			s.logger.Warnf("burn: failed to delete post, skipping. post:%s ledger:%d error:%v", msg.PostID, msg.ID, err)
			continue
		}

		if err := s.store.RemoveMessage(msg.ID); err != nil {
			s.logger.Errorf("burn: deleted post but failed to remove ledger entry. post:%s ledger:%d error:%v",
				msg.PostID, msg.ID, err)
			continue
		}

		deleted++
	}

	// the completion notice is deliberately not captured, it stays behind
	if _, err := s.poster.PostMessage(channelID, completionNotice, deleted, s.username(userID)); err != nil {
		s.logger.Errorf("burn: failed to post completion notice. channel:%s error:%v", channelID, err)
	}

	s.logger.Infof("burn: completed. user:%s team:%s deleted:%d of %d", userID, teamID, deleted, len(msgs))
}
