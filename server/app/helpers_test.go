package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/mattermost/mattermost-server/v6/model"

	"github.com/ericzzh/mattermost-plugin-burn/server/config"
)

// hand rolled doubles for the in-package tests; the generated mocks would
// close an import cycle here.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}

type memStore struct {
	mu sync.Mutex

	sessions map[string]RetentionSession // by user id
	msgs     []CapturedMessage
	nextID   int64

	failLoadLedger bool
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]RetentionSession{}}
}

func (st *memStore) CreateSession(session RetentionSession, maxTeamSessions int) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[session.UserID]; ok {
		return ErrSessionExists
	}
	var count int
	for _, s := range st.sessions {
		if s.TeamID == session.TeamID {
			count++
		}
	}
	if count >= maxTeamSessions {
		return ErrTeamFull
	}
	st.sessions[session.UserID] = session
	return nil
}

func (st *memStore) GetSession(userID string) (*RetentionSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (st *memStore) GetAllSessions() ([]RetentionSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := []RetentionSession{}
	for _, s := range st.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (st *memStore) CountSessionsForTeam(teamID string) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	var count int
	for _, s := range st.sessions {
		if s.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (st *memStore) RemoveSession(userID, teamID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok && s.TeamID == teamID {
		delete(st.sessions, userID)
	}
	return nil
}

func (st *memStore) CaptureMessage(msg CapturedMessage) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextID++
	msg.ID = st.nextID
	st.msgs = append(st.msgs, msg)
	return nil
}

func (st *memStore) GetMessages(userID, teamID string) ([]CapturedMessage, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.failLoadLedger {
		return nil, fmt.Errorf("ledger unavailable")
	}
	out := []CapturedMessage{}
	for _, m := range st.msgs {
		if m.UserID == userID && m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (st *memStore) RemoveMessage(id int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i, m := range st.msgs {
		if m.ID == id {
			st.msgs = append(st.msgs[:i], st.msgs[i+1:]...)
			break
		}
	}
	return nil
}

func (st *memStore) ledgerPostIDs() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := []string{}
	for _, m := range st.msgs {
		out = append(out, m.PostID)
	}
	return out
}

type memPoster struct {
	mu sync.Mutex

	nextID  int
	posts   []string // messages posted, in order
	deleted []string // post ids deleted, in order

	failDelete map[string]bool
}

func (p *memPoster) PostMessage(channelID, format string, args ...interface{}) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.posts = append(p.posts, fmt.Sprintf(format, args...))
	return &model.Post{
		Id:        fmt.Sprintf("bot-post-%d", p.nextID),
		ChannelId: channelID,
	}, nil
}

func (p *memPoster) EphemeralPost(userID, channelID string, post *model.Post) {}

func (p *memPoster) DeletePost(postID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failDelete[postID] {
		return fmt.Errorf("deletion refused")
	}
	p.deleted = append(p.deleted, postID)
	return nil
}

func (p *memPoster) postCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.posts)
}

func (p *memPoster) lastPost() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.posts) == 0 {
		return ""
	}
	return p.posts[len(p.posts)-1]
}

func (p *memPoster) deletedPostIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.deleted...)
}

type openPermissions struct{}

func (openPermissions) IsBotPrivileged(teamID string) (bool, error)        { return true, nil }
func (openPermissions) RoleInTeam(userID, teamID string) (TeamRole, error) { return RoleMember, nil }
func (openPermissions) TeamDisplayName(teamID string) string              { return teamID }
func (openPermissions) UsernameOf(userID string) string                   { return userID }

type staticConfig struct {
	cfg config.Configuration
}

func (c *staticConfig) GetConfiguration() *config.Configuration {
	return c.cfg.Clone()
}

func (c *staticConfig) UpdateConfiguration(f func(*config.Configuration)) error {
	f(&c.cfg)
	return nil
}

func (c *staticConfig) OnConfigurationChange() error { return nil }

type testService struct {
	*sessionService

	store  *memStore
	poster *memPoster

	mu     sync.Mutex
	sleeps []time.Duration
}

// newTestService builds a sessionService on the in-memory doubles, with
// sleeps recorded instead of slept and a frozen clock.
func newTestService(cfg config.Configuration) *testService {
	store := newMemStore()
	poster := &memPoster{failDelete: map[string]bool{}}

	ts := &testService{store: store, poster: poster}

	svc := NewSessionService(store, poster, nopLogger{}, openPermissions{}, &staticConfig{cfg: cfg}).(*sessionService)
	svc.sleep = func(d time.Duration) {
		ts.mu.Lock()
		ts.sleeps = append(ts.sleeps, d)
		ts.mu.Unlock()
	}

	ts.sessionService = svc
	return ts
}

func (ts *testService) recordedSleeps() []time.Duration {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]time.Duration{}, ts.sleeps...)
}

func (ts *testService) seedLedger(userID, teamID, channelID string, postIDs ...string) {
	for _, id := range postIDs {
		_ = ts.store.CaptureMessage(CapturedMessage{
			PostID:    id,
			UserID:    userID,
			TeamID:    teamID,
			ChannelID: channelID,
			CreateAt:  model.GetMillis(),
		})
	}
}
