// Package backup exports and restores the whole portal dataset as JSON
// snapshots in an object store and prunes old snapshots with a calendar
// based retention policy.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"nlt_server_go/models"
	"nlt_server_go/storage"
)

// TableOrder lists the logical tables in foreign key dependency order.
// Export reads and restore writes in exactly this order, so rows that
// reference an earlier table are written after their targets exist.
var TableOrder = []string{"agents", "providers", "customers", "practices", "reminders"}

// listPageSize bounds snapshot listings.
const listPageSize = 100

// RowStore is the table side of the engine: full reads and bulk
// insert-or-replace writes of opaque rows.
type RowStore interface {
	SelectAllRows(table string) ([]map[string]any, error)
	UpsertRows(table string, rows []map[string]any) error
}

// Service is the backup/retention engine. Both stores are injected so
// tests can run it against fakes.
type Service struct {
	Rows   RowStore
	Store  storage.ObjectStore
	Prefix string
}

func NewService(rows RowStore, store storage.ObjectStore, prefix string) *Service {
	return &Service{Rows: rows, Store: store, Prefix: prefix}
}

// ExportSnapshot dumps all tables into one document. The export is
// all-or-nothing: the first failing table read aborts it.
func (s *Service) ExportSnapshot() (*models.BackupDocument, error) {
	doc := &models.BackupDocument{
		Version:   models.BackupFormatVersion,
		Timestamp: time.Now().UTC(),
		Data:      make(map[string][]map[string]any, len(TableOrder)),
	}
	for _, table := range TableOrder {
		rows, err := s.Rows.SelectAllRows(table)
		if err != nil {
			return nil, &TableReadError{Table: table, Err: err}
		}
		if rows == nil {
			rows = []map[string]any{}
		}
		doc.Data[table] = rows
	}
	return doc, nil
}

// WriteSnapshotFile serializes the document and uploads it under the name
// encoded from its timestamp. Returns the snapshot name. The upload uses
// replace semantics so a retry with the same instant cannot fail on
// "already exists".
func (s *Service) WriteSnapshotFile(ctx context.Context, doc *models.BackupDocument) (string, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup document: %w", err)
	}

	name := EncodeSnapshotName(s.Prefix, doc.Timestamp)
	if err := s.Store.Upload(ctx, name, payload, "application/json", true); err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}
	return name, nil
}

// RestoreSnapshot replays a document into the tables in dependency order.
// Empty tables are skipped. The first failing table stops the restore;
// tables already written stay written. Destructive and irreversible - the
// caller is responsible for warning the user.
func (s *Service) RestoreSnapshot(doc *models.BackupDocument) error {
	if doc == nil || doc.Data == nil {
		return ErrInvalidFormat
	}
	for _, table := range TableOrder {
		rows := doc.Data[table]
		if len(rows) == 0 {
			continue
		}
		if err := s.Rows.UpsertRows(table, rows); err != nil {
			return &RestoreError{Table: table, Err: err}
		}
	}
	return nil
}

// ListSnapshots returns the snapshot files in the bucket, newest first,
// bounded to one page. Objects that merely share the bucket are filtered
// out by prefix and extension.
func (s *Service) ListSnapshots(ctx context.Context) ([]storage.ObjectInfo, error) {
	objects, err := s.Store.List(ctx, s.Prefix, listPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	snapshots := objects[:0]
	for _, obj := range objects {
		if strings.HasPrefix(obj.Name, s.Prefix) && strings.HasSuffix(obj.Name, snapshotExt) {
			snapshots = append(snapshots, obj)
		}
	}
	return snapshots, nil
}

// DownloadSnapshot fetches and decodes a snapshot by name.
func (s *Service) DownloadSnapshot(ctx context.Context, name string) (*models.BackupDocument, error) {
	payload, err := s.Store.Download(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to download snapshot %s: %w", name, err)
	}
	doc := &models.BackupDocument{}
	if err := json.Unmarshal(payload, doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return doc, nil
}
