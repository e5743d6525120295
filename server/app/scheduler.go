package app

import (
	"sync"
	"time"

	"github.com/ericzzh/mattermost-plugin-burn/server/bot"
)

type sessionKey struct {
	userID string
	teamID string
}

// Scheduler keeps one armed expiry timer per session, keyed by (user, team).
// A timer fires exactly once; Cancel disarms it, re-arming the same key
// replaces the previous timer.
type Scheduler struct {
	log bot.Logger

	mu     sync.Mutex
	timers map[sessionKey]*time.Timer
}

func NewScheduler(log bot.Logger) *Scheduler {
	return &Scheduler{
		log:    log,
		timers: map[sessionKey]*time.Timer{},
	}
}

// Arm schedules fire to run after d. The registry entry is removed before
// fire runs, so the callback may arm the same key again.
func (sc *Scheduler) Arm(userID, teamID string, d time.Duration, fire func()) {
	key := sessionKey{userID: userID, teamID: teamID}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if old, ok := sc.timers[key]; ok {
		old.Stop()
		sc.log.Warnf("burn: replacing armed timer. user:%s team:%s", userID, teamID)
	}

	sc.timers[key] = time.AfterFunc(d, func() {
		sc.mu.Lock()
		delete(sc.timers, key)
		sc.mu.Unlock()

		fire()
	})

	sc.log.Debugf("burn: armed expiry timer. user:%s team:%s delay:%v", userID, teamID, d)
}

// Cancel disarms the timer for (user, team). It reports whether a timer was
// armed. A timer whose callback already started is not stopped.
func (sc *Scheduler) Cancel(userID, teamID string) bool {
	key := sessionKey{userID: userID, teamID: teamID}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	t, ok := sc.timers[key]
	if !ok {
		return false
	}

	t.Stop()
	delete(sc.timers, key)

	sc.log.Debugf("burn: cancelled expiry timer. user:%s team:%s", userID, teamID)
	return true
}

// Armed reports whether a timer is armed for (user, team).
func (sc *Scheduler) Armed(userID, teamID string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	_, ok := sc.timers[sessionKey{userID: userID, teamID: teamID}]
	return ok
}
