package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefix = "nlt-backup-"

func TestEncodeSnapshotName(t *testing.T) {
	instant := time.Date(2026, 8, 31, 10, 15, 30, 123*int(time.Millisecond), time.UTC)
	name := EncodeSnapshotName(testPrefix, instant)
	assert.Equal(t, "nlt-backup-2026-08-31T10-15-30-123Z.json", name)
}

func TestEncodeSnapshotNameConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("CEST", 2*3600)
	instant := time.Date(2026, 8, 31, 12, 15, 30, 0, zone)
	name := EncodeSnapshotName(testPrefix, instant)
	assert.Equal(t, "nlt-backup-2026-08-31T10-15-30-000Z.json", name)
}

func TestDecodeSnapshotNameRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 10, 15, 30, 123*int(time.Millisecond), time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
	}
	for _, instant := range instants {
		decoded, err := DecodeSnapshotName(testPrefix, EncodeSnapshotName(testPrefix, instant))
		require.NoError(t, err)
		assert.True(t, decoded.Equal(instant), "round trip of %s gave %s", instant, decoded)
	}
}

func TestEncodeSnapshotNamePreservesOrdering(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, 12, 31, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 1*int(time.Millisecond), time.UTC),
		time.Date(2026, 1, 1, 9, 59, 59, 0, time.UTC),
		time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 11, 5, 10, 0, 0, 0, time.UTC),
	}
	for i := 1; i < len(instants); i++ {
		before := EncodeSnapshotName(testPrefix, instants[i-1])
		after := EncodeSnapshotName(testPrefix, instants[i])
		assert.Less(t, before, after)
	}
}

func TestDecodeSnapshotNameRejectsMalformedNames(t *testing.T) {
	names := []string{
		"",
		"nlt-backup-.json",
		"other-prefix-2026-08-31T10-15-30-123Z.json",
		"nlt-backup-2026-08-31T10-15-30-123Z.txt",
		"nlt-backup-2026-08-31.json",
		"nlt-backup-2026-08-31T10-15-30-123Z-extra.json",
		"nlt-backup-2026-13-99T10-15-30-123Z.json",
		"nlt-backup-2026-08-31T10:15:30.123Z.json",
		"nlt-backup-garbagegarbagegarbage.json",
	}
	for _, name := range names {
		_, err := DecodeSnapshotName(testPrefix, name)
		assert.ErrorIs(t, err, ErrMalformedName, "name %q", name)
	}
}
