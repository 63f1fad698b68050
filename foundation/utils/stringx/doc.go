// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx converts free text into identifier naming
//              conventions and provides the blank checks used across mdwx.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Free text case conversion with blank input errors

// Package stringx converts free text into identifier naming conventions.
//
// # Words
//
// A word is a maximal run of letters and digits (unicode.IsLetter or
// unicode.IsDigit). Every other rune, including whitespace, punctuation and
// line breaks, is a separator. Runs of separators collapse into a single
// boundary and leading or trailing separators leave nothing behind:
//
//	ToCamelCase("This is a sentence.")            // "thisIsASentence"
//	ToPascalCase(" - \"Direct speech.\" - author") // "DirectSpeechAuthor"
//
// ToCamelCase and ToPascalCase only change the first rune of each word.
// Everything else keeps its case, so "an HTTP server" becomes "anHTTPServer"
// and already converted input is returned unchanged.
//
// # Other conventions
//
// ToSnakeCase, ToScreamingSnakeCase and ToKebabCase split the words further
// at case changes ("HTTPServer" becomes "http_server"). ToTitleCase uses
// English title casing. Convert and ParseConvention select a convention by
// name, which is how the casex command dispatches.
//
// # Errors
//
// Every conversion fails for empty or whitespace-only text. The error is an
// *mdwerror.Error with code INVALID_ARGUMENT whose cause is ErrBlankText:
//
//	if _, err := stringx.ToCamelCase(input); errors.Is(err, stringx.ErrBlankText) {
//		// ask for non-blank input
//	}
//
// All functions are pure and safe for concurrent use.
package stringx
