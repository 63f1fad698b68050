// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration for mdwx tools
//              with dot-notation access, defaults and environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Removed hot-reloading and rule validation

/*
Package config provides configuration management for mdwx tools.

Key Features:
  - TOML and YAML with format detection from the file extension
  - Dot-notation getters with optional defaults
  - Environment overrides, optionally prefixed (CASEX_LOG_LEVEL for log.level)
  - Discovery of the first config file across search directories
  - Thread-safe access

# Basic Configuration Loading

	cfg, err := mdwconfig.Load("casex.toml")
	if err != nil {
		return err
	}

	convention := cfg.GetString("casex.convention", "camel")
	level := cfg.GetString("log.level", "info")

# Discovery

	cfg, err := mdwconfig.Discover(mdwconfig.DiscoveryOptions{
		Paths:     []string{".", filepath.Join(home, ".config", "casex")},
		Filenames: []string{"casex"},
		EnvPrefix: "casex",
		Defaults:  map[string]interface{}{"casex.convention": "camel"},
	})

When no file is found and Required is false, Discover returns a
configuration that answers from Defaults and the environment only.

# Errors

Failures are *mdwerror.Error values: NOT_FOUND for a missing file,
INVALID_CONFIG for content that does not parse, MISSING_CONFIG when a
required file cannot be discovered and INVALID_ARGUMENT for a blank path.
*/
package config
