// Package error provides structured error handling for the mdwx utilities.
//
// Package: error
// Title: mdwx Error Handling
// Description: Structured errors with a Code, a Severity, details and a captured
//              stack trace. Every failing operation in mdwx returns an *Error so
//              callers can branch on the code instead of on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code set, errors.As based helpers
//
// Usage:
//
//	import mdwerror "github.com/msto63/mdwx/foundation/core/error"
//
//	err := mdwerror.New("text cannot be blank").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("stringx.ToCamelCase").
//		WithDetail("argument", "text")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// caller mistake, report usage
//	}
//
// Wrapped causes stay visible to errors.Is and errors.As, so package sentinel
// errors can be attached with WithCause and matched by callers.
package error
