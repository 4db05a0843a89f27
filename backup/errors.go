package backup

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat marks a document that does not have the expected
// top-level shape.
var ErrInvalidFormat = errors.New("backup document has no data section")

// TableReadError reports which table made an export fail.
type TableReadError struct {
	Table string
	Err   error
}

func (e *TableReadError) Error() string {
	return fmt.Sprintf("backup export failed for table %s: %v", e.Table, e.Err)
}

func (e *TableReadError) Unwrap() error { return e.Err }

// RestoreError reports which table made a restore fail. Tables restored
// before it stay restored; there is no cross-table rollback.
type RestoreError struct {
	Table string
	Err   error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore failed for table %s: %v", e.Table, e.Err)
}

func (e *RestoreError) Unwrap() error { return e.Err }
