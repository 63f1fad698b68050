// ============================================================================
// mdwx - Extension utilities for the mDW foundation
// ============================================================================
//
// Package:     version
// Description: Central version management for mdwx tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for mdwx
const (
	// Library version of the foundation packages
	Foundation = "0.2.0"

	// Tool versions
	Casex = "0.2.0"
)

// Build information, set via -ldflags at release time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ToolVersion returns the version for a given tool name
func ToolVersion(name string) string {
	switch name {
	case "casex":
		return Casex
	default:
		return Foundation
	}
}

// Info returns the multi-line version report printed by `<tool> version`
func Info(tool string) string {
	return fmt.Sprintf("%s v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		tool, ToolVersion(tool), GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
