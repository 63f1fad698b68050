// File: doc.go
// Title: File Utilities Package Documentation
// Description: Package filex resolves executable and source directories and
//              provides small file helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Directory resolution

/*
Package filex resolves executable and source directories and provides small
file helpers.

ExecutableDir answers "where is this program installed", which is where
casex looks for a configuration file shipped next to the binary:

	dir, err := filex.ExecutableDir()

CallerDir answers the same for source files and is meant for tests that
keep fixtures next to their code:

	dir, _ := filex.CallerDir(0)
	fixture := filepath.Join(dir, "testdata", "input.txt")

Read failures are *mdwerror.Error values with code NOT_FOUND when the file
does not exist and INTERNAL otherwise; the os error stays in the chain.
*/
package filex
