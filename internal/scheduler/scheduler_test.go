package scheduler

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	s := NewScheduler(nil, nil, log.New(io.Discard, "", 0))
	s.gracefulTimeout = time.Second
	return s
}

func TestScheduleSeasonRefreshInvalidExpression(t *testing.T) {
	s := newTestScheduler()

	err := s.ScheduleSeasonRefresh("not a cron expression", 2024, 18)
	assert.Error(t, err)
	assert.Empty(t, s.Entries())
}

func TestStartWithoutJobs(t *testing.T) {
	s := newTestScheduler()

	assert.Error(t, s.Start())
	assert.False(t, s.IsRunning())
}

func TestStartStopLifecycle(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.ScheduleSeasonRefresh("0 6 * * 2", 2024, 18))
	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	// Double start is rejected.
	assert.Error(t, s.Start())

	next := s.GetNextRun()
	require.False(t, next.IsZero())
	assert.True(t, next.After(time.Now()))

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.True(t, s.GetNextRun().IsZero())

	// Stop is idempotent.
	require.NoError(t, s.Stop())
}

func TestScheduleWhileRunningRejected(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.ScheduleSeasonRefresh("0 6 * * 2", 2024, 18))
	require.NoError(t, s.Start())
	defer func() { _ = s.Stop() }()

	assert.Error(t, s.ScheduleSeasonRefresh("0 6 * * 2", 2024, 18))
	assert.Error(t, s.ScheduleWeekPolling(60, 2024, 5))
	assert.Error(t, s.RemoveJob(s.Entries()[0].ID))
}

func TestScheduleWeekPollingMinimumInterval(t *testing.T) {
	s := newTestScheduler()

	// Intervals below the floor are bumped to 30 seconds.
	require.NoError(t, s.ScheduleWeekPolling(5, 2024, 8))

	entries := s.Entries()
	require.Len(t, entries, 1)

	now := time.Now()
	assert.GreaterOrEqual(t, entries[0].Schedule.Next(now).Sub(now), 29*time.Second)
}

func TestRemoveJobWhenStopped(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.ScheduleWeekPolling(60, 2024, 8))
	entries := s.Entries()
	require.Len(t, entries, 1)

	require.NoError(t, s.RemoveJob(entries[0].ID))
}
