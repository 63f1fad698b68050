// Package errors provides the standard error constructors for mdwx packages.
//
// Package: errors
// Title: Standard Error Constructors for mdwx
// Description: An ErrorBuilder plus constructors for the failure kinds the
//              utilities produce. All of them return *mdwerror.Error with the
//              module and operation recorded as details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Argument and database constructors
//
// Usage:
//
//	var ErrBlankText = errors.New("text cannot be empty or contain only white space")
//
//	if stringx.IsBlank(text) {
//		return "", mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, "ToCamelCase", "text", ErrBlankText)
//	}
//
// The reason passed to InvalidArgument becomes the cause of the returned
// error, so errors.Is(err, ErrBlankText) holds for callers.
package errors
