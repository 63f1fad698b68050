// File: table.go
// Title: In-Memory Data Table
// Description: A column/row table that holds the result of a database query
//              after the underlying rows have been closed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"reflect"
)

// Column describes one result column.
type Column struct {
	Name         string
	DatabaseType string       // driver type name, e.g. "INTEGER"; may be empty
	ScanType     reflect.Type // Go type the driver scans into; may be nil
	Nullable     *bool        // nil when the driver does not report it
}

// Row holds one value per column, in column order. NULL is stored as nil.
type Row []any

// Table is an in-memory result set.
type Table struct {
	Columns []Column
	Rows    []Row
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Value returns the value at row and column. ok is false when either does
// not exist; a NULL value is returned as nil with ok true.
func (t *Table) Value(row int, column string) (value any, ok bool) {
	if row < 0 || row >= len(t.Rows) {
		return nil, false
	}
	index := t.ColumnIndex(column)
	if index < 0 || index >= len(t.Rows[row]) {
		return nil, false
	}
	return t.Rows[row][index], true
}

// addColumn appends a column and pads existing rows with NULL.
func (t *Table) addColumn(c Column) int {
	t.Columns = append(t.Columns, c)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], nil)
	}
	return len(t.Columns) - 1
}
