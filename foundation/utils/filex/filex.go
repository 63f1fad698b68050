// File: filex.go
// Title: Core File Utilities
// Description: Resolves the on-disk directory of the running executable and
//              of calling source files, and provides the small existence and
//              reading helpers used by configuration discovery and casex.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: ExecutableDir, CallerDir, ScanLines; trimmed the rest

package filex

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
)

// ErrNoCaller is returned by CallerDir when the stack has no frame at skip.
var ErrNoCaller = errors.New("no caller information")

// ===============================
// Directory Resolution
// ===============================

// ExecutableDir returns the directory containing the running executable,
// with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fileError("ExecutableDir", "", mdwerror.CodeEnvironmentError, err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fileError("ExecutableDir", exe, mdwerror.CodeEnvironmentError, err)
	}

	return filepath.Dir(resolved), nil
}

// CallerDir returns the directory of the source file of the function skip
// frames above the caller. CallerDir(0) is the directory of the calling file,
// which lets tests find fixtures next to their sources.
func CallerDir(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok || file == "" {
		return "", fileError("CallerDir", "", mdwerror.CodeNotFound, ErrNoCaller)
	}
	return filepath.Dir(file), nil
}

// ===============================
// Existence Checks
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ===============================
// Reading
// ===============================

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", readError("ReadString", path, err)
	}
	return string(content), nil
}

// ReadLines reads the file and returns its contents as a slice of lines
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, readError("ReadLines", path, err)
	}
	defer file.Close()

	lines, err := ScanLines(file)
	if err != nil {
		return nil, readError("ReadLines", path, err)
	}
	return lines, nil
}

// ScanLines reads r to the end and returns its lines without line endings.
// Lines longer than the default bufio.Scanner limit are supported up to 1 MiB.
func ScanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readError(operation, path string, err error) error {
	code := mdwerror.CodeInternal
	if errors.Is(err, os.ErrNotExist) {
		code = mdwerror.CodeNotFound
	}
	return fileError(operation, path, code, err)
}

func fileError(operation, path string, code mdwerror.Code, cause error) error {
	eb := mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
		Operation(operation).
		Code(code).
		Cause(cause)
	if path != "" {
		eb = eb.Messagef("filex.%s: %s", operation, path).Detail("path", path)
	}
	return eb.Build()
}
