// File: utils_test.go
// Title: Tests for Shared Error Handling Utilities
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-19 v0.2.0: Argument and database constructor tests

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorBuilder("tablex").
		Operation("Load").
		Message("load failed").
		Code(mdwerror.CodeDatabaseError).
		Cause(cause).
		Detail("column", "id").
		Build()

	if err.Code() != mdwerror.CodeDatabaseError {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Severity() != mdwerror.SeverityHigh {
		t.Errorf("Severity() = %v, want high", err.Severity())
	}
	if err.Operation() != "tablex.Load" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable")
	}
	details := err.Details()
	if details["module"] != "tablex" || details["operation"] != "Load" || details["column"] != "id" {
		t.Errorf("Details() = %v", details)
	}
}

func TestErrorBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder("slicex").Operation("Pop").Build()
	if err.Error() != "slicex.Pop failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != mdwerror.CodeInternal {
		t.Errorf("Code() = %v", err.Code())
	}

	err = NewErrorBuilder("slicex").Severity(mdwerror.SeverityCritical).Build()
	if err.Error() != "slicex operation failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Severity() != mdwerror.SeverityCritical {
		t.Errorf("Severity() = %v", err.Severity())
	}
}

func TestInvalidArgument(t *testing.T) {
	sentinel := errors.New("text cannot be blank")
	err := InvalidArgument(ModuleStringx, "ToCamelCase", "text", sentinel)

	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("code = %v", err.Code())
	}
	if err.Severity() != mdwerror.SeverityLow {
		t.Errorf("Severity() = %v", err.Severity())
	}
	if !errors.Is(err, sentinel) {
		t.Error("sentinel not reachable with errors.Is")
	}
	want := `stringx.ToCamelCase: invalid argument "text": text cannot be blank`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !IsModuleOperation(err, ModuleStringx, "ToCamelCase") {
		t.Error("IsModuleOperation() = false")
	}
}

func TestNilArgument(t *testing.T) {
	err := NilArgument(ModuleSlicex, "AddRange", "collection")
	if !strings.HasSuffix(err.Error(), "collection cannot be nil") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Details()["argument"] != "collection" {
		t.Errorf("argument detail = %v", err.Details()["argument"])
	}
}

func TestConstructorCodes(t *testing.T) {
	cause := errors.New("x")
	tests := []struct {
		name string
		err  *mdwerror.Error
		code mdwerror.Code
	}{
		{"invalid operation", InvalidOperation(ModuleTablex, "Load", cause), mdwerror.CodeInvalidOperation},
		{"not found", NotFound(ModuleFilex, "ExecutableDir", "binary"), mdwerror.CodeNotFound},
		{"database", Database(ModuleTablex, "Query", cause), mdwerror.CodeDatabaseError},
		{"config", Config("Load", mdwerror.CodeInvalidConfig, cause, "casex.toml"), mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
		})
	}
}

func TestExtractFromForeignError(t *testing.T) {
	err := errors.New("plain")
	if ExtractDetails(err) != nil {
		t.Error("ExtractDetails() should be nil for plain errors")
	}
	if ExtractModule(err) != "" || ExtractOperation(err) != "" {
		t.Error("plain errors carry no module or operation")
	}
}
