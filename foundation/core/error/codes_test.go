// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validation, categorization, exit codes
//              and the code to severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive code tests
// - 2026-10-19 v0.2.0: Exit codes, severity mapping merged in

package error

import (
	"testing"
)

var allCodes = []Code{
	CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidArgument,
	CodeInvalidOperation, CodeTimeout, CodeDatabaseError,
	CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
	CodeValidationFailed, CodeInvalidFormat,
}

func TestCodeIsValid(t *testing.T) {
	for _, code := range allCodes {
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}
	if Code("SOMETHING_ELSE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidArgument, "validation"},
		{CodeInvalidFormat, "validation"},
		{CodeDatabaseError, "database"},
		{CodeInvalidConfig, "configuration"},
		{CodeNotFound, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	if got := CodeInvalidArgument.ExitCode(); got != 2 {
		t.Errorf("INVALID_ARGUMENT exit code = %d, want 2", got)
	}
	if got := CodeDatabaseError.ExitCode(); got != 1 {
		t.Errorf("DATABASE_ERROR exit code = %d, want 1", got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low and medium severities must not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high and critical severities must alert")
	}
}

func TestGetSeverityFromCodeCoversAllCodes(t *testing.T) {
	for _, code := range allCodes {
		s := GetSeverityFromCode(code)
		if s < SeverityLow || s > SeverityCritical {
			t.Errorf("GetSeverityFromCode(%s) = %v", code, s)
		}
	}
}
