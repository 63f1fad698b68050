// File: load.go
// Title: Loading Tables from database/sql
// Description: Fills a Table from *sql.Rows: columns from the result schema,
//              then one row per record.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"context"
	"database/sql"
	"errors"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
)

var (
	// ErrNilArgument is the cause of errors for a nil table, rows or db.
	ErrNilArgument = errors.New("argument cannot be nil")

	// ErrRowsClosed is the cause of errors for rows that were already closed.
	ErrRowsClosed = errors.New("rows are closed")
)

// Load reads all remaining records from rows into table.
//
// Result columns that the table does not have yet are appended, existing
// columns with the same name are filled in place. Load does not close rows.
// Cancelling ctx stops loading between records; the records read so far
// stay in the table.
func Load(ctx context.Context, table *Table, rows *sql.Rows) error {
	const op = "Load"

	if table == nil {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleTablex, op, "table", ErrNilArgument)
	}
	if rows == nil {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleTablex, op, "rows", ErrNilArgument)
	}

	// ColumnTypes only fails for closed rows.
	types, err := rows.ColumnTypes()
	if err != nil {
		return mdwerrors.InvalidOperation(mdwerrors.ModuleTablex, op, errors.Join(ErrRowsClosed, err))
	}

	positions := make([]int, len(types))
	for i, ct := range types {
		index := table.ColumnIndex(ct.Name())
		if index < 0 {
			index = table.addColumn(columnFromType(ct))
		}
		positions[i] = index
	}

	values := make([]any, len(types))
	dest := make([]any, len(types))
	for i := range values {
		dest[i] = &values[i]
	}

	for {
		if err := ctx.Err(); err != nil {
			return canceled(op, err)
		}
		if !rows.Next() {
			break
		}
		if err := rows.Scan(dest...); err != nil {
			return mdwerrors.Database(mdwerrors.ModuleTablex, op, err)
		}

		row := make(Row, len(table.Columns))
		for i, v := range values {
			row[positions[i]] = copyValue(v)
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return canceled(op, ctxErr)
		}
		return mdwerrors.Database(mdwerrors.ModuleTablex, op, err)
	}
	return nil
}

// Query runs query on db and loads the result into a new table.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) (*Table, error) {
	if db == nil {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleTablex, "Query", "db", ErrNilArgument)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleTablex).
			Operation("Query").
			Code(mdwerror.CodeDatabaseError).
			Cause(err).
			Detail("query", query).
			Build()
	}
	defer rows.Close()

	table := New()
	if err := Load(ctx, table, rows); err != nil {
		return nil, err
	}
	return table, nil
}

func columnFromType(ct *sql.ColumnType) Column {
	c := Column{
		Name:         ct.Name(),
		DatabaseType: ct.DatabaseTypeName(),
		ScanType:     ct.ScanType(),
	}
	if nullable, ok := ct.Nullable(); ok {
		c.Nullable = &nullable
	}
	return c
}

// copyValue detaches driver owned byte slices from the next Scan.
func copyValue(v any) any {
	if b, ok := v.([]byte); ok {
		return append([]byte(nil), b...)
	}
	return v
}

func canceled(op string, err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleTablex).
		Operation(op).
		Messagef("tablex.%s: canceled", op).
		Code(mdwerror.CodeTimeout).
		Cause(err).
		Build()
}
