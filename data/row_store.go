package data

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// backupTables are the tables covered by the backup engine, in foreign key
// dependency order. Must stay in sync with the schema.
var backupTables = []string{"agents", "providers", "customers", "practices", "reminders"}

// SQLRowStore exposes the portal tables as opaque rows for the backup
// engine. It is constructed with an explicit handle so tests can run it
// against their own database.
type SQLRowStore struct {
	db *sqlx.DB
}

func NewRowStore(db *sqlx.DB) *SQLRowStore {
	return &SQLRowStore{db: db}
}

func (s *SQLRowStore) knownTable(table string) bool {
	for _, t := range backupTables {
		if t == table {
			return true
		}
	}
	return false
}

// SelectAllRows reads every row of a table as a column-name-to-value map.
// Rows are ordered by primary key so repeated exports are comparable.
func (s *SQLRowStore) SelectAllRows(table string) ([]map[string]any, error) {
	if !s.knownTable(table) {
		return nil, fmt.Errorf("SelectAllRows: unknown table %s", table)
	}

	rows, err := s.db.Queryx(`SELECT * FROM ` + table + ` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("SelectAllRows: failed to read table %s: %w", table, err)
	}
	defer rows.Close()

	result := []map[string]any{}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("SelectAllRows: failed to scan row of %s: %w", table, err)
		}
		// MapScan yields []byte for text columns; keep rows JSON-friendly.
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SelectAllRows: failed to iterate table %s: %w", table, err)
	}
	return result, nil
}

// UpsertRows writes rows back into a table with insert-or-replace-by-key
// semantics. All rows go through one transaction.
func (s *SQLRowStore) UpsertRows(table string, rowMaps []map[string]any) error {
	if !s.knownTable(table) {
		return fmt.Errorf("UpsertRows: unknown table %s", table)
	}
	if len(rowMaps) == 0 {
		return nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("UpsertRows: failed to begin transaction for %s: %w", table, err)
	}
	defer tx.Rollback()

	for _, row := range rowMaps {
		columns := make([]string, 0, len(row))
		for column := range row {
			columns = append(columns, column)
		}
		sort.Strings(columns)

		placeholders := make([]string, len(columns))
		values := make([]any, len(columns))
		for i, column := range columns {
			placeholders[i] = "?"
			values[i] = row[column]
		}

		query := fmt.Sprintf(`INSERT OR REPLACE INTO %s (%s) VALUES (%s)`,
			table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
		if _, err := tx.Exec(query, values...); err != nil {
			return fmt.Errorf("UpsertRows: failed to upsert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("UpsertRows: failed to commit %s: %w", table, err)
	}
	return nil
}
