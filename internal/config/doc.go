// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration resolves in three steps: an explicit --config path wins, then a
// project-scope cqrsgen.cue in the project directory, then the user-scope
// config.cue under ~/.config/cqrsgen (or the XDG equivalent on Linux,
// ~/Library/Application Support/cqrsgen on macOS, %APPDATA%\cqrsgen on Windows).
// The package provides type-safe access to the source root, generation
// defaults, hook commands, and UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue)
// to ensure type safety and provide clear error messages for invalid configurations.
package config
