// File: case.go
// Title: String Case Conversion Utilities
// Description: Converts free text into identifier naming conventions. Words
//              are maximal runs of letters and digits; every other character
//              is a separator and is dropped from the output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.2.0: Single-scan camel/Pascal conversion, blank input errors,
//                      Convention type, strcase and x/text backed conventions

package stringx

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
)

// ErrBlankText is the cause of every conversion error for empty or
// whitespace-only input.
var ErrBlankText = errors.New("text is empty or consists only of whitespace")

// ErrUnknownConvention is returned by ParseConvention for unknown names.
var ErrUnknownConvention = errors.New("unknown naming convention")

// ToCamelCase converts text to camelCase.
// The first rune of the first word is lower-cased, the first rune of every
// later word is upper-cased and all other runes are kept as given.
// Example: "This is a sentence." -> "thisIsASentence"
func ToCamelCase(text string) (string, error) {
	if IsBlank(text) {
		return "", blankText("ToCamelCase")
	}
	return joinWords(text, false), nil
}

// ToPascalCase converts text to PascalCase.
// The first rune of every word is upper-cased, all other runes are kept.
// Example: "This is a sentence." -> "ThisIsASentence"
func ToPascalCase(text string) (string, error) {
	if IsBlank(text) {
		return "", blankText("ToPascalCase")
	}
	return joinWords(text, true), nil
}

// joinWords drops separators and recases word starts in one pass.
func joinWords(text string, upperFirstWord bool) string {
	var result strings.Builder
	result.Grow(len(text))

	atWordStart := true
	firstWord := true

	for _, r := range text {
		if !isWordRune(r) {
			atWordStart = true
			continue
		}

		if atWordStart {
			if firstWord && !upperFirstWord {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			atWordStart = false
			firstWord = false
		}

		result.WriteRune(r)
	}

	return result.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Words splits text into its words, using the same boundaries as ToCamelCase.
// Example: " - \"Hi there\" - 42" -> ["Hi", "there", "42"]
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

// ToSnakeCase converts text to snake_case.
// Example: "MyVariable name" -> "my_variable_name"
func ToSnakeCase(text string) (string, error) {
	if IsBlank(text) {
		return "", blankText("ToSnakeCase")
	}
	return strings.ToLower(strcase.ToSnake(spacedWords(text))), nil
}

// ToScreamingSnakeCase converts text to SCREAMING_SNAKE_CASE.
// Example: "max retry count" -> "MAX_RETRY_COUNT"
func ToScreamingSnakeCase(text string) (string, error) {
	if IsBlank(text) {
		return "", blankText("ToScreamingSnakeCase")
	}
	return strings.ToUpper(strcase.ToScreamingSnake(spacedWords(text))), nil
}

// ToKebabCase converts text to kebab-case.
// Example: "MyVariable name" -> "my-variable-name"
func ToKebabCase(text string) (string, error) {
	if IsBlank(text) {
		return "", blankText("ToKebabCase")
	}
	return strings.ToLower(strcase.ToKebab(spacedWords(text))), nil
}

// ToTitleCase converts text to Title Case with single spaces between words.
// Example: "hello, WORLD" -> "Hello World"
func ToTitleCase(text string) (string, error) {
	if IsBlank(text) {
		return "", blankText("ToTitleCase")
	}
	return cases.Title(language.English).String(spacedWords(text)), nil
}

// spacedWords normalizes separators to single spaces so the delimiter based
// converters see the same words as ToCamelCase.
func spacedWords(text string) string {
	return strings.Join(Words(text), " ")
}

func blankText(operation string) error {
	return mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, operation, "text", ErrBlankText)
}

// Convention names a supported identifier naming convention.
type Convention string

const (
	ConventionCamel          Convention = "camel"
	ConventionPascal         Convention = "pascal"
	ConventionSnake          Convention = "snake"
	ConventionScreamingSnake Convention = "screaming-snake"
	ConventionKebab          Convention = "kebab"
	ConventionTitle          Convention = "title"
)

// Conventions returns all conventions in display order.
func Conventions() []Convention {
	return []Convention{
		ConventionCamel,
		ConventionPascal,
		ConventionSnake,
		ConventionScreamingSnake,
		ConventionKebab,
		ConventionTitle,
	}
}

// String returns the convention name
func (c Convention) String() string {
	return string(c)
}

// Example returns how "naming convention" looks in c.
func (c Convention) Example() string {
	out, err := Convert(c, "naming convention")
	if err != nil {
		return ""
	}
	return out
}

// ParseConvention parses a convention name. Common aliases such as
// "camelCase", "snake_case" or "SCREAMING" are accepted.
func ParseConvention(name string) (Convention, error) {
	key := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
	key = strings.TrimSuffix(key, "case")

	switch key {
	case "camel", "lowercamel":
		return ConventionCamel, nil
	case "pascal", "uppercamel":
		return ConventionPascal, nil
	case "snake":
		return ConventionSnake, nil
	case "screamingsnake", "screaming", "constant", "uppersnake":
		return ConventionScreamingSnake, nil
	case "kebab", "dash":
		return ConventionKebab, nil
	case "title":
		return ConventionTitle, nil
	}

	return "", mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, "ParseConvention", "name",
		fmt.Errorf("%w: %q", ErrUnknownConvention, name))
}

// Convert converts text to the given convention.
func Convert(c Convention, text string) (string, error) {
	switch c {
	case ConventionCamel:
		return ToCamelCase(text)
	case ConventionPascal:
		return ToPascalCase(text)
	case ConventionSnake:
		return ToSnakeCase(text)
	case ConventionScreamingSnake:
		return ToScreamingSnakeCase(text)
	case ConventionKebab:
		return ToKebabCase(text)
	case ConventionTitle:
		return ToTitleCase(text)
	}

	return "", mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, "Convert", "convention",
		fmt.Errorf("%w: %q", ErrUnknownConvention, string(c)))
}
