// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard constructors every
//              mdwx package uses, so that argument, operation and database
//              failures look the same regardless of where they come from.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-19 v0.2.0: InvalidArgument/NilArgument constructors, sentinel causes

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleSlicex   = "slicex"
	ModuleReflectx = "reflectx"
	ModuleFilex    = "filex"
	ModuleTablex   = "tablex"
	ModuleConfig   = "config"
	ModuleCasex    = "casex"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    mdwerror.Severity
	severitySet bool
	code        mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity. Without it the severity follows the code.
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeInternal
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	err := mdwerror.New(eb.message).WithCause(eb.cause)

	severity := mdwerror.GetSeverityFromCode(eb.code)
	if eb.severitySet {
		severity = eb.severity
	}

	return err.
		WithCode(eb.code).
		WithSeverity(severity).
		WithOperation(qualified(eb.module, eb.operation)).
		WithDetails(eb.details)
}

func qualified(module, operation string) string {
	if operation == "" {
		return module
	}
	return module + "." + operation
}

// InvalidArgument reports a caller supplied argument that the operation cannot
// accept. reason is kept as the cause so callers can match package sentinels
// with errors.Is.
func InvalidArgument(module, operation, argument string, reason error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s: invalid argument %q", qualified(module, operation), argument).
		Code(mdwerror.CodeInvalidArgument).
		Cause(reason).
		Detail("argument", argument).
		Build()
}

// NilArgument reports a required argument that was nil
func NilArgument(module, operation, argument string) *mdwerror.Error {
	return InvalidArgument(module, operation, argument, fmt.Errorf("%s cannot be nil", argument))
}

// InvalidOperation reports an operation that cannot run in the current state
// of its operands, e.g. reading from closed rows.
func InvalidOperation(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s: invalid operation", qualified(module, operation)).
		Code(mdwerror.CodeInvalidOperation).
		Cause(cause).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s: %v not found", qualified(module, operation), identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// Database wraps a driver or scan failure
func Database(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s: database error", qualified(module, operation)).
		Code(mdwerror.CodeDatabaseError).
		Cause(cause).
		Build()
}

// Config wraps a configuration failure with the given code
func Config(operation string, code mdwerror.Code, cause error, path string) *mdwerror.Error {
	eb := NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("%s: configuration error", qualified(ModuleConfig, operation)).
		Code(code).
		Cause(cause)
	if path != "" {
		eb = eb.Detail("path", path)
	}
	return eb.Build()
}

// ExtractDetails extracts all details from a mdwx error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
