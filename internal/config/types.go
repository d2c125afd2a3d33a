// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSourceRoot is the sentinel error wrapped by InvalidSourceRootError.
	ErrInvalidSourceRoot = errors.New("invalid source root")
	// ErrInvalidHookCommand is returned when a HookCommand value is whitespace-only.
	ErrInvalidHookCommand = errors.New("invalid hook command")
	// ErrInvalidHooksConfig is the sentinel error wrapped by InvalidHooksConfigError.
	ErrInvalidHooksConfig = errors.New("invalid hooks config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SourceRootPath is the project-relative directory that generated artifacts
	// default into (e.g., "src" or "lib/server").
	// The zero value ("") is valid and means "use the built-in default".
	// Non-zero values must not be whitespace-only, absolute, or climb out of
	// the project via ".." segments.
	SourceRootPath string

	// InvalidSourceRootError is returned when a SourceRootPath value is
	// whitespace-only, absolute, or escapes the project directory.
	// It wraps ErrInvalidSourceRoot for errors.Is() compatibility.
	InvalidSourceRootError struct {
		Value SourceRootPath
	}

	// HookCommand is a shell command line executed by the hook runner.
	// The zero value ("") is valid and means "no hook configured".
	// Non-zero values must not be whitespace-only.
	HookCommand string

	// InvalidHookCommandError is returned when a HookCommand value is
	// non-empty but whitespace-only.
	InvalidHookCommandError struct {
		Value HookCommand
	}

	// InvalidHooksConfigError is returned when a HooksConfig has invalid fields.
	// It wraps ErrInvalidHooksConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidHooksConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// SourceRoot is the default target directory for generated artifacts.
		SourceRoot SourceRootPath `json:"source_root,omitempty" mapstructure:"source_root"`
		// Generate configures generation defaults that flags can override.
		Generate GenerateConfig `json:"generate,omitempty" mapstructure:"generate"`
		// Hooks configures commands run around generation.
		Hooks HooksConfig `json:"hooks,omitempty" mapstructure:"hooks"`
		// UI configures the user interface.
		UI UIConfig `json:"ui,omitempty" mapstructure:"ui"`
	}

	// GenerateConfig holds generation defaults. Flags take precedence.
	GenerateConfig struct {
		// Flat places the class and handler side by side instead of under
		// impl/ and handlers/ subdirectories.
		Flat bool `json:"flat,omitempty" mapstructure:"flat"`
		// SkipImport disables aggregation module registration.
		SkipImport bool `json:"skip_import,omitempty" mapstructure:"skip_import"`
	}

	// HooksConfig holds commands run around generation.
	HooksConfig struct {
		// PostGenerate runs after each successful generation.
		PostGenerate HookCommand `json:"post_generate,omitempty" mapstructure:"post_generate"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme,omitempty" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose,omitempty" mapstructure:"verbose"`
	}
)

// IsValid returns whether the HooksConfig has valid fields.
// It delegates to PostGenerate.IsValid().
func (c HooksConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.PostGenerate.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidHooksConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHooksConfigError.
func (e *InvalidHooksConfigError) Error() string {
	return fmt.Sprintf("invalid hooks config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidHooksConfig for errors.Is() compatibility.
func (e *InvalidHooksConfigError) Unwrap() error { return ErrInvalidHooksConfig }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to SourceRoot.IsValid(), Hooks.IsValid(), and UI.IsValid().
// Generate has only bool fields and needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.SourceRoot.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Hooks.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the SourceRootPath.
func (p SourceRootPath) String() string { return string(p) }

// IsValid returns whether the SourceRootPath is valid.
// The zero value ("") is valid (means "use the built-in default").
// Non-zero values must be relative, stay inside the project, and must not
// be whitespace-only.
func (p SourceRootPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	s := string(p)
	if strings.TrimSpace(s) == "" {
		return false, []error{&InvalidSourceRootError{Value: p}}
	}
	if strings.HasPrefix(s, "/") || filepath.IsAbs(s) {
		return false, []error{&InvalidSourceRootError{Value: p}}
	}
	for _, seg := range strings.Split(s, "/") {
		if seg == ".." {
			return false, []error{&InvalidSourceRootError{Value: p}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidSourceRootError.
func (e *InvalidSourceRootError) Error() string {
	return fmt.Sprintf("invalid source root %q: must be a relative path inside the project", e.Value)
}

// Unwrap returns ErrInvalidSourceRoot for errors.Is() compatibility.
func (e *InvalidSourceRootError) Unwrap() error { return ErrInvalidSourceRoot }

// String returns the string representation of the HookCommand.
func (c HookCommand) String() string { return string(c) }

// IsValid returns whether the HookCommand is valid.
// The zero value ("") is valid (means "no hook configured").
// Non-zero values must not be whitespace-only.
func (c HookCommand) IsValid() (bool, []error) {
	if c == "" {
		return true, nil
	}
	if strings.TrimSpace(string(c)) == "" {
		return false, []error{&InvalidHookCommandError{Value: c}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHookCommandError.
func (e *InvalidHookCommandError) Error() string {
	return fmt.Sprintf("invalid hook command %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidHookCommand for errors.Is() compatibility.
func (e *InvalidHookCommandError) Unwrap() error { return ErrInvalidHookCommand }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SourceRoot: "src",
		Generate: GenerateConfig{
			Flat:       false,
			SkipImport: false,
		},
		Hooks: HooksConfig{
			PostGenerate: "", // No hook unless configured
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
