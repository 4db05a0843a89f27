package data

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"nlt_server_go/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(":memory:"))
	t.Cleanup(func() { DB.Close() })
}

func seedAgent(t *testing.T, code string, isAdmin bool) *models.Agent {
	t.Helper()
	hash, err := HashPin("1234")
	require.NoError(t, err)
	agent := &models.Agent{
		ID:       uuid.NewString(),
		Code:     code,
		Name:     "Agent " + code,
		PinHash:  hash,
		IsAdmin:  isAdmin,
		IsActive: true,
	}
	require.NoError(t, CreateAgent(agent))
	return agent
}

func seedProvider(t *testing.T, name string) *models.Provider {
	t.Helper()
	provider := &models.Provider{
		ID:       uuid.NewString(),
		Name:     name,
		IsActive: true,
	}
	require.NoError(t, CreateProvider(provider))
	return provider
}

func seedCustomer(t *testing.T, agentID, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		ID:      uuid.NewString(),
		AgentID: agentID,
		Name:    name,
	}
	require.NoError(t, CreateCustomer(customer))
	return customer
}

func seedPractice(t *testing.T, agentID, customerID string) *models.Practice {
	t.Helper()
	practice := &models.Practice{
		ID:         uuid.NewString(),
		AgentID:    agentID,
		CustomerID: customerID,
		Vehicle:    "Fiat 500e",
		MonthlyFee: 299,
		Revenue:    450,
	}
	require.NoError(t, CreatePractice(practice))
	return practice
}

func seedReminder(t *testing.T, practiceID, agentID string, due time.Time) *models.Reminder {
	t.Helper()
	reminder := &models.Reminder{
		ID:         uuid.NewString(),
		PracticeID: practiceID,
		AgentID:    agentID,
		DueDate:    due,
		Note:       "call back",
	}
	require.NoError(t, CreateReminder(reminder))
	return reminder
}
