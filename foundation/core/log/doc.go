// Package log provides structured logging for the mdwx utilities and the casex tool.
//
// Package: log
// Title: mdwx Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output, immutable context via With* methods, and severity aware
//              reporting of mdwx errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Trimmed to the synchronous logger used by casex
//
// Usage:
//
//	import mdwlog "github.com/msto63/mdwx/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithName("casex").
//		WithCorrelationID(uuid.NewString())
//
//	logger.Debug("converting", mdwlog.Field("convention", "camel"))
//	logger.LogError(err)
package log
