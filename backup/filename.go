package backup

import (
	"errors"
	"strings"
	"time"
)

// Snapshot names are the prefix plus a millisecond-precision UTC ISO-8601
// instant with ':' and '.' replaced by '-', plus ".json". Fixed-width
// fields keep the lexicographic order of names equal to the chronological
// order of their instants.

const snapshotExt = ".json"

const instantLayout = "2006-01-02T15:04:05.000Z"

// encoded form of instantLayout: "2006-01-02T15-04-05-000Z"
const encodedLen = len(instantLayout)

// ErrMalformedName marks an object name that was not produced by
// EncodeSnapshotName. Listing and retention skip such objects instead of
// failing on them.
var ErrMalformedName = errors.New("name does not match the snapshot codec")

// EncodeSnapshotName builds the snapshot name for an instant.
func EncodeSnapshotName(prefix string, t time.Time) string {
	encoded := strings.NewReplacer(":", "-", ".", "-").Replace(t.UTC().Format(instantLayout))
	return prefix + encoded + snapshotExt
}

// DecodeSnapshotName recovers the instant from a snapshot name. It is the
// exact inverse of EncodeSnapshotName and returns ErrMalformedName for
// anything else.
func DecodeSnapshotName(prefix, name string) (time.Time, error) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, snapshotExt) {
		return time.Time{}, ErrMalformedName
	}
	core := strings.TrimSuffix(strings.TrimPrefix(name, prefix), snapshotExt)
	if len(core) != encodedLen {
		return time.Time{}, ErrMalformedName
	}

	// The date part and 'T' pass through unchanged; the time part gets its
	// two ':' and the millisecond '.' back.
	chars := []byte(core)
	if chars[13] != '-' || chars[16] != '-' || chars[19] != '-' {
		return time.Time{}, ErrMalformedName
	}
	chars[13] = ':'
	chars[16] = ':'
	chars[19] = '.'

	t, err := time.Parse(instantLayout, string(chars))
	if err != nil {
		return time.Time{}, ErrMalformedName
	}
	return t, nil
}
