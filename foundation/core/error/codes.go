// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the mdwx utilities and the casex command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the extension utilities,
//                       added CodeInvalidArgument

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeTimeout          Code = "TIMEOUT"

	// Database and storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidArgument,
		CodeInvalidOperation, CodeTimeout, CodeDatabaseError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDatabaseError:
		return "database"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeInvalidArgument, CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the casex command uses for this code.
// Usage errors (bad arguments, bad config) map to 2, everything else to 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidArgument, CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat,
		CodeInvalidConfig, CodeMissingConfig:
		return 2
	default:
		return 1
	}
}
