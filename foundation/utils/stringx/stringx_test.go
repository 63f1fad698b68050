// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Tests for blank checks, truncation, line splitting and
//              default selection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Reduced to the kept helpers

package stringx

import (
	"testing"
)

func TestBlankChecks(t *testing.T) {
	tests := []struct {
		input string
		empty bool
		blank bool
	}{
		{"", true, true},
		{" ", false, true},
		{"\t\r\n", false, true},
		{" ", false, true},
		{"a", false, false},
		{" a ", false, false},
	}

	for _, tt := range tests {
		if IsEmpty(tt.input) != tt.empty || IsNotEmpty(tt.input) == tt.empty {
			t.Errorf("IsEmpty/IsNotEmpty(%q) mismatch", tt.input)
		}
		if IsBlank(tt.input) != tt.blank || IsNotBlank(tt.input) == tt.blank {
			t.Errorf("IsBlank/IsNotBlank(%q) mismatch", tt.input)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "short", 10, "...", "short"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"unicode", "héllo wörld", 7, "…", "héllo …"},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q; want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"unix", "a\nb\n", []string{"a", "b"}},
		{"windows", "a\r\nb", []string{"a", "b"}},
		{"old mac", "a\rb", []string{"a", "b"}},
		{"inner blank line", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("SplitLines(%q) = %q; want %q", tt.input, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("SplitLines(%q)[%d] = %q; want %q", tt.input, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "kebab", "camel"); got != "kebab" {
		t.Errorf("FirstNonBlank() = %q; want kebab", got)
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Errorf("FirstNonBlank() = %q; want empty", got)
	}
}
