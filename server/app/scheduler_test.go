package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerFiresOnce(t *testing.T) {
	sc := NewScheduler(nopLogger{})

	fired := make(chan struct{})
	sc.Arm("user1", "tm1", 10*time.Millisecond, func() { close(fired) })

	require.True(t, sc.Armed("user1", "tm1"))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	assert.Eventually(t, func() bool {
		return !sc.Armed("user1", "tm1")
	}, time.Second, 10*time.Millisecond)
}

func TestSchedulerCancelPreventsFiring(t *testing.T) {
	sc := NewScheduler(nopLogger{})

	fired := make(chan struct{})
	sc.Arm("user1", "tm1", 50*time.Millisecond, func() { close(fired) })

	require.True(t, sc.Cancel("user1", "tm1"))
	assert.False(t, sc.Cancel("user1", "tm1"))

	select {
	case <-fired:
		t.Fatal("cancelled timer fired")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestSchedulerRearmReplacesTimer(t *testing.T) {
	sc := NewScheduler(nopLogger{})

	first := make(chan struct{})
	second := make(chan struct{})
	sc.Arm("user1", "tm1", 200*time.Millisecond, func() { close(first) })
	sc.Arm("user1", "tm1", 10*time.Millisecond, func() { close(second) })

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("replacement timer did not fire")
	}

	select {
	case <-first:
		t.Fatal("replaced timer fired")
	case <-time.After(400 * time.Millisecond):
	}
}
