// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the first configuration file across a list of
//              directories, base names and extensions and loads it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: Optional discovery falls back to defaults

package config

import (
	"path/filepath"

	mdwerror "github.com/msto63/mdwx/foundation/core/error"
	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
	mdwfilex "github.com/msto63/mdwx/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search, in order
	Filenames  []string               // Base filenames without extension
	Extensions []string               // Extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values keyed by dot notation
	Required   bool                   // Fail when no file is found
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, an empty configuration with the defaults is
// returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	if path, ok := FindConfigFile(options); ok {
		return LoadWithOptions(path, loadOptions)
	}

	if options.Required {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("Discover").
			Message("no configuration file found").
			Code(mdwerror.CodeMissingConfig).
			Detail("searchPaths", ListPossibleConfigFiles(options)).
			Build()
	}

	return New(loadOptions), nil
}

// FindConfigFile returns the first candidate path that is a regular file
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if mdwfilex.IsFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}
