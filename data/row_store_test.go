package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowStoreRejectsUnknownTables(t *testing.T) {
	setupTestDB(t)
	store := NewRowStore(DB)

	_, err := store.SelectAllRows("sqlite_master")
	assert.Error(t, err)
	assert.Error(t, store.UpsertRows("no_such_table", []map[string]any{{"id": "x"}}))
}

func TestRowStoreSelectAllRowsReturnsPlainValues(t *testing.T) {
	setupTestDB(t)
	agent := seedAgent(t, "a1", false)
	store := NewRowStore(DB)

	rows, err := store.SelectAllRows("agents")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Text columns come back as strings, not raw byte slices, so the rows
	// serialize to readable JSON.
	assert.Equal(t, agent.ID, rows[0]["id"])
	assert.Equal(t, "a1", rows[0]["code"])
	assert.IsType(t, "", rows[0]["pin_hash"])
}

func TestRowStoreSelectAllRowsEmptyTable(t *testing.T) {
	setupTestDB(t)
	store := NewRowStore(DB)

	rows, err := store.SelectAllRows("reminders")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRowStoreRoundTrip(t *testing.T) {
	setupTestDB(t)

	agent := seedAgent(t, "a1", true)
	seedProvider(t, "Leasys")
	customer := seedCustomer(t, agent.ID, "Rossi SRL")
	practice := seedPractice(t, agent.ID, customer.ID)
	seedReminder(t, practice.ID, agent.ID, time.Now().UTC().Add(24*time.Hour))

	store := NewRowStore(DB)

	tables := []string{"agents", "providers", "customers", "practices", "reminders"}
	exported := map[string][]map[string]any{}
	for _, table := range tables {
		rows, err := store.SelectAllRows(table)
		require.NoError(t, err)
		require.NotEmpty(t, rows, table)
		exported[table] = rows
	}

	// Wipe everything, children first to respect foreign keys.
	for i := len(tables) - 1; i >= 0; i-- {
		_, err := DB.Exec(`DELETE FROM ` + tables[i])
		require.NoError(t, err)
	}

	// Replaying in dependency order must succeed with foreign keys on.
	for _, table := range tables {
		require.NoError(t, store.UpsertRows(table, exported[table]))
	}

	for _, table := range tables {
		rows, err := store.SelectAllRows(table)
		require.NoError(t, err)
		assert.Equal(t, exported[table], rows, table)
	}
}

func TestRowStoreUpsertReplacesByPrimaryKey(t *testing.T) {
	setupTestDB(t)
	agent := seedAgent(t, "a1", false)
	store := NewRowStore(DB)

	rows, err := store.SelectAllRows("agents")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows[0]["name"] = "Renamed"
	require.NoError(t, store.UpsertRows("agents", rows))

	reloaded, err := GetAgentByID(agent.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "Renamed", reloaded.Name)

	count, err := CountAgents()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
