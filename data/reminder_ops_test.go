package data

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRemindersFilters(t *testing.T) {
	setupTestDB(t)
	agentA := seedAgent(t, "a1", false)
	agentB := seedAgent(t, "b2", false)
	customer := seedCustomer(t, agentA.ID, "Rossi SRL")
	practiceA := seedPractice(t, agentA.ID, customer.ID)
	customerB := seedCustomer(t, agentB.ID, "Bianchi SPA")
	practiceB := seedPractice(t, agentB.ID, customerB.ID)

	now := time.Now().UTC()
	early := seedReminder(t, practiceA.ID, agentA.ID, now.Add(24*time.Hour))
	late := seedReminder(t, practiceA.ID, agentA.ID, now.Add(72*time.Hour))
	seedReminder(t, practiceB.ID, agentB.ID, now.Add(48*time.Hour))

	all, err := ListReminders("", false, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := ListReminders(agentA.ID, false, time.Time{})
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	// Ordered by due date.
	assert.Equal(t, early.ID, scoped[0].ID)
	assert.Equal(t, late.ID, scoped[1].ID)

	require.NoError(t, ResolveReminder(early.ID))
	open, err := ListReminders(agentA.ID, true, time.Time{})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, late.ID, open[0].ID)

	dueSoon, err := ListReminders(agentA.ID, false, now.Add(36*time.Hour))
	require.NoError(t, err)
	require.Len(t, dueSoon, 1)
	assert.Equal(t, early.ID, dueSoon[0].ID)
}

func TestResolveAndDeleteReminder(t *testing.T) {
	setupTestDB(t)
	agent := seedAgent(t, "a1", false)
	customer := seedCustomer(t, agent.ID, "Rossi SRL")
	practice := seedPractice(t, agent.ID, customer.ID)
	reminder := seedReminder(t, practice.ID, agent.ID, time.Now().UTC())

	require.NoError(t, ResolveReminder(reminder.ID))
	reloaded, err := GetReminderByID(reminder.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.Done)

	require.NoError(t, DeleteReminder(reminder.ID))
	gone, err := GetReminderByID(reminder.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, ResolveReminder(reminder.ID), sql.ErrNoRows)
	assert.ErrorIs(t, DeleteReminder(reminder.ID), sql.ErrNoRows)
}

func TestGetDashboard(t *testing.T) {
	setupTestDB(t)
	agent := seedAgent(t, "a1", false)
	other := seedAgent(t, "b2", false)
	customer := seedCustomer(t, agent.ID, "Rossi SRL")
	otherCustomer := seedCustomer(t, other.ID, "Bianchi SPA")

	completed := seedPractice(t, agent.ID, customer.ID)
	for i := 0; i < 3; i++ {
		_, err := AdvancePracticePhase(completed.ID)
		require.NoError(t, err)
	}
	seedPractice(t, agent.ID, customer.ID)
	seedPractice(t, other.ID, otherCustomer.ID)

	now := time.Now().UTC()
	seedReminder(t, completed.ID, agent.ID, now.Add(-time.Hour)) // overdue
	seedReminder(t, completed.ID, agent.ID, now.Add(time.Hour))
	resolved := seedReminder(t, completed.ID, agent.ID, now.Add(-2*time.Hour))
	require.NoError(t, ResolveReminder(resolved.ID))

	dashboard, err := GetDashboard(agent.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.PracticesByPhase["completed"])
	assert.Equal(t, 1, dashboard.PracticesByPhase["negotiation"])
	assert.Equal(t, 2, dashboard.OpenReminders)
	assert.Equal(t, 1, dashboard.OverdueReminders)

	// The completed practice was ordered just now, so its revenue lands in
	// the current month's bucket.
	require.Len(t, dashboard.MonthlyRevenue, 1)
	assert.Equal(t, now.Format("2006-01"), dashboard.MonthlyRevenue[0].Month)
	assert.Equal(t, completed.Revenue, dashboard.MonthlyRevenue[0].Revenue)

	// The global view sees both agents' practices.
	global, err := GetDashboard("")
	require.NoError(t, err)
	assert.Equal(t, 2, global.PracticesByPhase["negotiation"])
}
