package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	scheduler := NewScheduler(NewService(newFakeRowStore(), newFakeObjectStore(), testPrefix), "not a cron spec")
	defer scheduler.Stop(time.Second)

	assert.Error(t, scheduler.Start())
}

func TestSchedulerStartsAndStops(t *testing.T) {
	scheduler := NewScheduler(NewService(newFakeRowStore(), newFakeObjectStore(), testPrefix), "@daily")
	require.NoError(t, scheduler.Start())
	scheduler.Stop(time.Second)
}

func TestSchedulerWithoutScheduleIsIdle(t *testing.T) {
	scheduler := NewScheduler(NewService(newFakeRowStore(), newFakeObjectStore(), testPrefix), "")
	require.NoError(t, scheduler.Start())
	scheduler.Stop(time.Second)
}
