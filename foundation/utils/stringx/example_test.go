// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-19 v0.2.0: Examples for free text case conversion

package stringx_test

import (
	"errors"
	"fmt"

	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
)

func ExampleToCamelCase() {
	out, _ := mdwstringx.ToCamelCase("This is a sentence.")
	fmt.Println(out)

	out, _ = mdwstringx.ToCamelCase("Digits in the sentence are kept - 1, 2, 3 etc.")
	fmt.Println(out)

	_, err := mdwstringx.ToCamelCase("   ")
	fmt.Println(errors.Is(err, mdwstringx.ErrBlankText))
	// Output:
	// thisIsASentence
	// digitsInTheSentenceAreKept123Etc
	// true
}

func ExampleToPascalCase() {
	out, _ := mdwstringx.ToPascalCase(` - "This is a direct speech." - author`)
	fmt.Println(out)
	// Output:
	// ThisIsADirectSpeechAuthor
}

func ExampleConvert() {
	for _, c := range mdwstringx.Conventions() {
		out, _ := mdwstringx.Convert(c, "max retry count")
		fmt.Printf("%-15s %s\n", c, out)
	}
	// Output:
	// camel           maxRetryCount
	// pascal          MaxRetryCount
	// snake           max_retry_count
	// screaming-snake MAX_RETRY_COUNT
	// kebab           max-retry-count
	// title           Max Retry Count
}

func ExampleIsBlank() {
	fmt.Println(mdwstringx.IsBlank(""))
	fmt.Println(mdwstringx.IsBlank("   "))
	fmt.Println(mdwstringx.IsBlank(" hello "))
	// Output:
	// true
	// true
	// false
}

func ExampleTruncate() {
	fmt.Println(mdwstringx.Truncate("This is a long text that needs to be truncated", 20, "..."))
	// Output:
	// This is a long te...
}
