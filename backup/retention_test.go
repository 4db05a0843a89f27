package backup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlt_server_go/storage"
)

func retentionService(store storage.ObjectStore) *Service {
	return &Service{Store: store, Prefix: testPrefix}
}

func snapshotAt(instant time.Time) storage.ObjectInfo {
	return storage.ObjectInfo{Name: EncodeSnapshotName(testPrefix, instant)}
}

func TestComputeFilesToDeleteWeeklyRollover(t *testing.T) {
	// 2026-08-31 is a Monday.
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	service := retentionService(nil)

	tuesday := snapshotAt(time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC))   // age 6
	saturday := snapshotAt(time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC))  // age 2
	sunday := snapshotAt(time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC))    // age 8, Sunday
	yesterday := snapshotAt(time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)) // age 1, too fresh
	today := snapshotAt(time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC))

	toDelete := service.ComputeFilesToDelete(
		[]storage.ObjectInfo{tuesday, saturday, sunday, yesterday, today}, now)

	assert.ElementsMatch(t, []string{tuesday.Name, saturday.Name}, toDelete)
}

func TestComputeFilesToDeleteOnlyOnMonday(t *testing.T) {
	// 2026-09-15 is a mid-month Tuesday: nothing collapses.
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	service := retentionService(nil)

	snapshots := []storage.ObjectInfo{
		snapshotAt(now.AddDate(0, 0, -2)),
		snapshotAt(now.AddDate(0, 0, -5)),
		snapshotAt(now.AddDate(0, 0, -8)),
	}
	assert.Empty(t, service.ComputeFilesToDelete(snapshots, now))
}

func TestComputeFilesToDeleteMonthlyRollover(t *testing.T) {
	// 2026-09-01 is a Tuesday, so only the monthly rule can fire.
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	service := retentionService(nil)

	midMonth := snapshotAt(time.Date(2026, 8, 15, 8, 0, 0, 0, time.UTC))   // age 17
	firstOfMonth := snapshotAt(time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)) // age 31, day 1
	fresh := snapshotAt(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))       // age < 1 day

	toDelete := service.ComputeFilesToDelete(
		[]storage.ObjectInfo{midMonth, firstOfMonth, fresh}, now)

	assert.Equal(t, []string{midMonth.Name}, toDelete)
}

func TestComputeFilesToDeleteHardCutoff(t *testing.T) {
	// A mid-week, mid-month instant: only the age cutoff applies.
	now := time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)
	service := retentionService(nil)

	ancient := snapshotAt(now.AddDate(0, 0, -91))
	boundary := snapshotAt(now.AddDate(0, 0, -90))

	toDelete := service.ComputeFilesToDelete(
		[]storage.ObjectInfo{ancient, boundary}, now)

	assert.Equal(t, []string{ancient.Name}, toDelete)
}

func TestComputeFilesToDeleteIgnoresForeignNames(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	service := retentionService(nil)

	snapshots := []storage.ObjectInfo{
		{Name: "nlt-backup-not-a-snapshot.json"},
		{Name: "unrelated.txt"},
		snapshotAt(now.AddDate(0, 0, -3)),
	}
	toDelete := service.ComputeFilesToDelete(snapshots, now)
	require.Len(t, toDelete, 1)
	assert.NotContains(t, toDelete, "nlt-backup-not-a-snapshot.json")
}

func TestComputeFilesToDeleteDeduplicatesAcrossRules(t *testing.T) {
	// 2027-03-01 is both a Monday and the first of the month, so a
	// mid-week snapshot from the previous week matches both rules.
	now := time.Date(2027, 3, 1, 8, 0, 0, 0, time.UTC)
	service := retentionService(nil)

	doubleMatch := snapshotAt(time.Date(2027, 2, 23, 8, 0, 0, 0, time.UTC))
	toDelete := service.ComputeFilesToDelete([]storage.ObjectInfo{doubleMatch}, now)
	assert.Equal(t, []string{doubleMatch.Name}, toDelete)
}

func TestRunRetentionPolicySwallowsListErrors(t *testing.T) {
	store := newFakeObjectStore()
	store.listErr = assert.AnError
	service := retentionService(store)

	deleted := service.RunRetentionPolicy(context.Background(), time.Now().UTC())
	assert.Zero(t, deleted)
}

func TestRunRetentionPolicyDeletesInOneCall(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC) // Monday
	store := newFakeObjectStore()
	ctx := context.Background()

	keep := EncodeSnapshotName(testPrefix, time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC))
	drop1 := EncodeSnapshotName(testPrefix, time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC))
	drop2 := EncodeSnapshotName(testPrefix, time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC))
	for _, name := range []string{keep, drop1, drop2} {
		require.NoError(t, store.Upload(ctx, name, []byte("{}"), "application/json", true))
	}

	service := retentionService(store)
	deleted := service.RunRetentionPolicy(ctx, now)

	assert.Equal(t, 2, deleted)
	require.Len(t, store.deleteCalls, 1)
	assert.ElementsMatch(t, []string{drop1, drop2}, store.deleteCalls[0])

	remaining, err := store.List(ctx, testPrefix, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep, remaining[0].Name)
}
