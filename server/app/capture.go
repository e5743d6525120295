package app

import (
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
)

// CapturePost records the post for later burning iff its author currently
// holds an active session in the team. Fire and forget: failures are
// logged, never surfaced to the author, and the post is delivered normally
// either way.
func (s *sessionService) CapturePost(post *model.Post, teamID string) {
	session, err := s.store.GetSession(post.UserId)
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Errorf("burn: capture session lookup failed. user:%s error:%v", post.UserId, err)
		return
	}

	if session.TeamID != teamID {
		return
	}

	err = s.store.CaptureMessage(CapturedMessage{
		PostID:    post.Id,
		UserID:    post.UserId,
		TeamID:    teamID,
		ChannelID: post.ChannelId,
		CreateAt:  post.CreateAt,
	})
	if err != nil {
		s.logger.Errorf("burn: failed to capture post. post:%s user:%s error:%v", post.Id, post.UserId, err)
		return
	}

	s.logger.Debugf("burn: captured post. post:%s user:%s team:%s", post.Id, post.UserId, teamID)
}
