package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericzzh/mattermost-plugin-burn/server/config"
)

func burnConfig() config.Configuration {
	return config.Configuration{
		RecallDelaySeconds:         30,
		MaxDurationSeconds:         3600,
		MaxUsers:                   2,
		BatchRecallIntervalSeconds: 2,
	}
}

func TestBurnPacesDeletionsOldestFirst(t *testing.T) {
	ts := newTestService(burnConfig())

	require.NoError(t, ts.store.CreateSession(RetentionSession{
		UserID: "user1", TeamID: "tm1", ChannelID: "ch1",
	}, 2))
	ts.seedLedger("user1", "tm1", "ch1", "p1", "p2", "p3", "p4", "p5")

	ts.Burn("user1", "tm1", "ch1")

	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ts.poster.deletedPostIDs())

	// one grace delay up front, then one pause before each further deletion
	assert.Equal(t, []time.Duration{
		30 * time.Second,
		2 * time.Second, 2 * time.Second, 2 * time.Second, 2 * time.Second,
	}, ts.recordedSleeps())

	assert.Empty(t, ts.store.ledgerPostIDs())

	_, err := ts.store.GetSession("user1")
	assert.ErrorIs(t, err, ErrNotFound)

	// the completion notice stays behind
	assert.Equal(t, 1, ts.poster.postCount())
}

func TestBurnSkipsFailedDeletion(t *testing.T) {
	ts := newTestService(burnConfig())

	ts.seedLedger("user1", "tm1", "ch1", "p1", "p2", "p3", "p4", "p5")
	ts.poster.failDelete["p3"] = true

	ts.Burn("user1", "tm1", "ch1")

	assert.Equal(t, []string{"p1", "p2", "p4", "p5"}, ts.poster.deletedPostIDs())

	// the failed entry survives for a later pass
	assert.Equal(t, []string{"p3"}, ts.store.ledgerPostIDs())
	assert.Contains(t, ts.poster.lastPost(), "4 message(s)")
}

func TestBurnWithEmptyLedgerIsSilent(t *testing.T) {
	ts := newTestService(burnConfig())

	ts.Burn("user1", "tm1", "ch1")

	assert.Empty(t, ts.recordedSleeps())
	assert.Zero(t, ts.poster.postCount())
}

func TestBurnAbortsWhenLedgerUnavailable(t *testing.T) {
	ts := newTestService(burnConfig())

	ts.seedLedger("user1", "tm1", "ch1", "p1", "p2")
	ts.store.failLoadLedger = true

	ts.Burn("user1", "tm1", "ch1")

	assert.Empty(t, ts.poster.deletedPostIDs())
	assert.Equal(t, []string{"p1", "p2"}, ts.store.ledgerPostIDs())
	assert.Zero(t, ts.poster.postCount())
}

func TestBurnTwiceIsHarmless(t *testing.T) {
	ts := newTestService(burnConfig())

	ts.seedLedger("user1", "tm1", "ch1", "p1", "p2")

	ts.Burn("user1", "tm1", "ch1")
	ts.Burn("user1", "tm1", "ch1")

	assert.Equal(t, []string{"p1", "p2"}, ts.poster.deletedPostIDs())
	assert.Equal(t, 1, ts.poster.postCount())
}
