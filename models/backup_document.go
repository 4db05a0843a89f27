package models

import "time"

// BackupFormatVersion tags the backup document schema.
const BackupFormatVersion = "1"

// BackupDocument is a full dump of the application tables. Rows are kept
// opaque: they are captured verbatim from the store and replayed verbatim
// on restore, without any per-column validation.
type BackupDocument struct {
	Version   string                      `json:"version"`
	Timestamp time.Time                   `json:"timestamp"`
	Data      map[string][]map[string]any `json:"data"`
}
