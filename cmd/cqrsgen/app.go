// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cqrsgen/cqrsgen/internal/config"
	"github.com/cqrsgen/cqrsgen/internal/hooks"
	"github.com/cqrsgen/cqrsgen/internal/scaffold"
	"github.com/cqrsgen/cqrsgen/pkg/fstree"
	"github.com/cqrsgen/cqrsgen/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer — all Cobra command handlers receive an App reference and delegate
	// business logic through its service interfaces (Config, Generator, Hooks).
	App struct {
		Config      ConfigProvider
		Generator   GeneratorService
		Hooks       HookRunner
		Diagnostics DiagnosticRenderer
		stdout      io.Writer
		stderr      io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests can supply mock implementations
	// to isolate specific service behavior.
	Dependencies struct {
		Config      ConfigProvider
		Generator   GeneratorService
		Hooks       HookRunner
		Diagnostics DiagnosticRenderer
		Stdout      io.Writer
		Stderr      io.Writer
	}

	// GeneratorService runs one generation against the given file tree and
	// returns its structured result. Implementations must not write to
	// stdout/stderr; findings come back as Result.Diagnostics for the CLI
	// layer to render.
	GeneratorService interface {
		Generate(ctx context.Context, tree fstree.Tree, kind scaffold.Kind, req scaffold.Request) (*scaffold.Result, error)
	}

	// HookRunner executes the configured post-generation shell command.
	HookRunner interface {
		Run(ctx context.Context, script string, inv hooks.Invocation) error
	}

	// DiagnosticRenderer renders structured diagnostics.
	DiagnosticRenderer interface {
		Render(ctx context.Context, diags []scaffold.Diagnostic, stderr io.Writer)
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// appGeneratorService implements GeneratorService over the scaffold
	// pipeline. A fresh Generator is built per call because the tree can
	// differ between calls (real project dir vs dry-run overlay).
	appGeneratorService struct{}

	// appHookRunner runs hooks in the current working directory.
	appHookRunner struct {
		stdout io.Writer
		stderr io.Writer
	}

	defaultDiagnosticRenderer struct{}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Generator == nil {
		deps.Generator = &appGeneratorService{}
	}
	if deps.Hooks == nil {
		deps.Hooks = &appHookRunner{stdout: deps.Stdout, stderr: deps.Stderr}
	}
	if deps.Diagnostics == nil {
		deps.Diagnostics = &defaultDiagnosticRenderer{}
	}

	return &App{
		Config:      deps.Config,
		Generator:   deps.Generator,
		Hooks:       deps.Hooks,
		Diagnostics: deps.Diagnostics,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
	}, nil
}

// Generate runs the scaffold pipeline against tree.
func (s *appGeneratorService) Generate(ctx context.Context, tree fstree.Tree, kind scaffold.Kind, req scaffold.Request) (*scaffold.Result, error) {
	gen := scaffold.New(tree, scaffold.Options{Logger: slog.Default()})
	return gen.Generate(ctx, kind, req)
}

// Run executes script in the current working directory.
func (r *appHookRunner) Run(ctx context.Context, script string, inv hooks.Invocation) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	runner := &hooks.Runner{Dir: wd, Stdout: r.stdout, Stderr: r.stderr}
	return runner.Run(ctx, script, inv)
}

// loadConfigWithFallback loads configuration via the provider. On failure it
// returns defaults with a diagnostic so callers stay operational.
//
// Diagnostic severity depends on the failure mode:
//   - Explicit --config path: always SeverityError (user-specified file must work).
//   - Default path with existing but malformed file: SeverityError (syntax errors
//     in a file the user created should not be silently downgraded to a warning).
//   - Default path with missing config dir or similar infrastructure error:
//     SeverityWarning (common on fresh installs, defaults are appropriate).
func loadConfigWithFallback(ctx context.Context, provider ConfigProvider, configPath string) (*config.Config, []scaffold.Diagnostic) {
	opts := config.LoadOptions{}
	if configPath != "" {
		opts.ConfigFilePath = types.FilesystemPath(configPath)
	}

	cfg, err := provider.Load(ctx, opts)
	if err == nil {
		return cfg, nil
	}

	// When the user explicitly specified a config path, do not silently fall back
	// to defaults — surface the error so the caller can decide whether to abort.
	if configPath != "" {
		return config.DefaultConfig(), []scaffold.Diagnostic{{
			Severity: scaffold.SeverityError,
			Code:     scaffold.CodeConfigLoadFailed,
			Message:  fmt.Sprintf("failed to load config from %s: %v", configPath, err),
			Path:     configPath,
			Cause:    err,
		}}
	}

	// Default config path: differentiate "file exists but is broken" (syntax error,
	// schema violation) from "cannot determine config dir" (missing HOME, etc.).
	// The config loader only returns errors for existing files; missing files silently
	// return defaults. So if we got an error here, a config file likely exists but
	// is malformed — use SeverityError to surface it clearly.
	severity := scaffold.SeverityError
	if errors.Is(err, os.ErrNotExist) {
		severity = scaffold.SeverityWarning
	}

	return config.DefaultConfig(), []scaffold.Diagnostic{{
		Severity: severity,
		Code:     scaffold.CodeConfigLoadFailed,
		Message:  fmt.Sprintf("failed to load config, using defaults: %v", err),
		Cause:    err,
	}}
}

// Render writes structured diagnostics to stderr with lipgloss styling.
func (r *defaultDiagnosticRenderer) Render(_ context.Context, diags []scaffold.Diagnostic, stderr io.Writer) {
	for _, diag := range diags {
		prefix := WarningStyle.Render("warning")
		if diag.Severity == scaffold.SeverityError {
			prefix = ErrorStyle.Render("error")
		}

		if diag.Path != "" {
			_, _ = fmt.Fprintf(stderr, "%s: %s (%s)\n", prefix, diag.Message, diag.Path)
			continue
		}

		_, _ = fmt.Fprintf(stderr, "%s: %s\n", prefix, diag.Message)
	}
}
