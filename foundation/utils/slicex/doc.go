// File: doc.go
// Title: Slice Utilities Package Documentation
// Description: Package slicex provides generic collection helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Mutating helpers

/*
Package slicex provides generic collection helpers.

Functions that change a collection take a pointer to the slice, so the
caller sees the new length:

	_ = slicex.AddRange(&items, more...)
	n, _ := slicex.RemoveWhere(&items, isEmpty)
	job, _ := slicex.PopOrDefault(&queue, isReady)

A nil list, predicate or action is reported as an INVALID_ARGUMENT
*mdwerror.Error whose cause is ErrNilArgument. A nil slice behind a
non-nil pointer is an empty collection and is not an error.
*/
package slicex
