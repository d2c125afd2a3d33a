// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cqrsgen/cqrsgen/internal/issue"
	"github.com/cqrsgen/cqrsgen/pkg/cueutil"
	"github.com/cqrsgen/cqrsgen/pkg/platform"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "cqrsgen"
	// ConfigFileName is the name of the user-scope config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// ProjectFileName is the name of the project-scope config file looked up
	// in the project directory. It takes precedence over the user-scope file.
	ProjectFileName = "cqrsgen.cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the cqrsgen configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level cache state. Callers that want caching can wrap this function.
//
// Resolution order: an explicit ConfigFilePath wins, then the project-scope
// ProjectFileName in the project directory, then the user-scope file in the
// config directory. When no file is found the built-in defaults apply.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("source_root", defaults.SourceRoot)
	v.SetDefault("generate.flat", defaults.Generate.Flat)
	v.SetDefault("generate.skip_import", defaults.Generate.SkipImport)
	v.SetDefault("hooks.post_generate", defaults.Hooks.PostGenerate)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	resolvedPath := ""

	// If a custom config file path is set via --config flag, use it exclusively.
	if opts.ConfigFilePath != "" {
		cfgPath := opts.ConfigFilePath.String()
		if !fileExists(cfgPath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(cfgPath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'cqrsgen config show' to see default configuration").
				Wrap(fmt.Errorf("config file not found: %s", cfgPath)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, cfgPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(cfgPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("See 'cqrsgen config --help' for configuration options").
				Wrap(err).
				BuildError()
		}
		resolvedPath = cfgPath
	} else {
		// Try the project-scope file first; a project that carries its own
		// cqrsgen.cue pins generation behavior for everyone working on it.
		projectPath := filepath.Join(projectDirOrDefault(opts), ProjectFileName)
		if fileExists(projectPath) {
			if err := loadCUEIntoViper(v, projectPath); err != nil {
				return nil, "", issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(projectPath).
					WithSuggestion("Check that the file contains valid CUE syntax").
					WithSuggestion("Verify the configuration values match the expected schema").
					WithSuggestion("Run 'cqrsgen init --force' to regenerate a valid project file").
					Wrap(err).
					BuildError()
			}
			resolvedPath = projectPath
		} else {
			// Fall back to the user-scope config file
			cfgDir, err := configDirWithOverride(opts.ConfigDirPath.String())
			if err != nil {
				return nil, "", err
			}

			cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
			if fileExists(cuePath) {
				if err := loadCUEIntoViper(v, cuePath); err != nil {
					return nil, "", issue.NewErrorContext().
						WithOperation("load configuration").
						WithResource(cuePath).
						WithSuggestion("Check that the file contains valid CUE syntax").
						WithSuggestion("Verify the configuration values match the expected schema").
						WithSuggestion("See 'cqrsgen config --help' for configuration options").
						Wrap(err).
						BuildError()
				}
				resolvedPath = cuePath
			}
			// If no config file found, use defaults (no error)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate constraints the CUE schema cannot (or deliberately does not)
	// express: whitespace-only strings and source roots escaping the project.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(displayPath(resolvedPath)).
			WithSuggestion("Use a project-relative source_root such as \"src\" or \"lib/server\"").
			WithSuggestion("Remove whitespace-only values; omit a field to use its default").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// projectDirOrDefault resolves the directory searched for the project-scope
// config file; empty means the current working directory.
func projectDirOrDefault(opts LoadOptions) string {
	if opts.ProjectDir != "" {
		return opts.ProjectDir.String()
	}
	return "."
}

// displayPath renders the resolved config path for error messages, naming the
// defaults when no file was loaded.
func displayPath(resolvedPath string) string {
	if resolvedPath == "" {
		return "built-in defaults"
	}
	return resolvedPath
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// ResolvePath reports which config file a Load with the same options would
// read. When no file exists, it returns the user-scope location where one
// would be created, with found=false.
func ResolvePath(opts LoadOptions) (path string, found bool, err error) {
	if err := opts.Validate(); err != nil {
		return "", false, err
	}

	if opts.ConfigFilePath != "" {
		p := opts.ConfigFilePath.String()
		return p, fileExists(p), nil
	}

	projectPath := filepath.Join(projectDirOrDefault(opts), ProjectFileName)
	if fileExists(projectPath) {
		return projectPath, true, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath.String())
	if err != nil {
		return "", false, err
	}
	userPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	return userPath, fileExists(userPath), nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Note: This uses manual CUE parsing instead of cueutil.ParseAndDecode because:
// 1. Config decodes to map[string]any (not a struct) for Viper integration
// 2. Uses Concrete(false) because config fields are optional
// 3. Needs to merge into Viper's config map, not return a struct
func loadCUEIntoViper(v *viper.Viper, path string) error {
	// Read CUE file
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Check file size using cueutil
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	// Parse with CUE
	ctx := cuecontext.New()

	// Compile the schema
	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	// Compile the user's config file
	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	// Unify with schema to validate against #Config definition
	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	// Decode to Go map
	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// ValidateCUE checks that data is a valid configuration file without
// loading it: the content must compile, unify with the #Config schema and
// decode. The init command validates generated project files with this
// before writing them.
func ValidateCUE(data []byte, filename string) error {
	_, err := cueutil.ParseAndDecodeString[Config](configSchema, data, "#Config",
		cueutil.WithFilename(filename),
		cueutil.WithConcrete(false),
	)
	return err
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig creates a default user-scope config file if it doesn't exist
func CreateDefaultConfig() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	// Check if file already exists
	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	defaults := DefaultConfig()
	cueContent := GenerateCUE(defaults)

	if err := os.WriteFile(cfgPath, []byte(cueContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Save writes the given configuration to the user-scope config file
func Save(cfg *Config) error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	cueContent := GenerateCUE(cfg)

	if err := os.WriteFile(cfgPath, []byte(cueContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// cqrsgen configuration file\n")
	sb.WriteString("// See https://github.com/cqrsgen/cqrsgen for documentation.\n\n")

	// Source root
	sb.WriteString(fmt.Sprintf("source_root: %q\n", cfg.SourceRoot))

	// Generation defaults
	sb.WriteString("\ngenerate: {\n")
	sb.WriteString(fmt.Sprintf("\tflat:        %v\n", cfg.Generate.Flat))
	sb.WriteString(fmt.Sprintf("\tskip_import: %v\n", cfg.Generate.SkipImport))
	sb.WriteString("}\n")

	// Hooks
	if cfg.Hooks.PostGenerate != "" {
		sb.WriteString("\nhooks: {\n")
		sb.WriteString(fmt.Sprintf("\tpost_generate: %q\n", cfg.Hooks.PostGenerate))
		sb.WriteString("}\n")
	}

	// UI config
	sb.WriteString("\nui: {\n")
	sb.WriteString(fmt.Sprintf("\tcolor_scheme: %q\n", cfg.UI.ColorScheme))
	sb.WriteString(fmt.Sprintf("\tverbose:      %v\n", cfg.UI.Verbose))
	sb.WriteString("}\n")

	return sb.String()
}
