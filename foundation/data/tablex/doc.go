// File: doc.go
// Title: Data Table Package Documentation
// Description: Package tablex loads database/sql results into memory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package tablex loads database/sql results into an in-memory Table.
//
//	table, err := tablex.Query(ctx, db, "SELECT id, first_name FROM users")
//	name, _ := table.Value(0, "first_name")
//
// Load works on rows the caller already holds and can be called repeatedly
// to append several result sets to one table. Errors use the mdwx codes:
// INVALID_ARGUMENT for nil inputs, INVALID_OPERATION for closed rows,
// TIMEOUT when ctx is done and DATABASE_ERROR for driver failures.
package tablex
