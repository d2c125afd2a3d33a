// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cqrsgen/cqrsgen/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cqrsgen",
		Short: "CQRS boilerplate generator for NestJS projects",
		Long: TitleStyle.Render("cqrsgen") + SubtitleStyle.Render(" - CQRS boilerplate generator for NestJS projects") + `

cqrsgen generates @nestjs/cqrs boilerplate from a feature name: a command
or query class with its payload shape, a handler stub, and the handler's
registration in the nearest *.module.ts providers array.

` + SubtitleStyle.Render("Quick Start:") + `
  1. cd into your NestJS project
  2. Generate a command: cqrsgen generate command create-user
  3. Generate a query:   cqrsgen generate query list-users

` + SubtitleStyle.Render("Examples:") + `
  cqrsgen generate command create-user       Command + handler under src/
  cqrsgen generate query list-users --flat   Both files directly in src/
  cqrsgen generate c sync --path src/orders  Generate into another directory
  cqrsgen init                               Create a project cqrsgen.cue
  cqrsgen config show                        Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is cqrsgen.cue, then $HOME/.config/cqrsgen/config.cue)")

	app := mustNewApp()
	rootCmd.AddCommand(newGenerateCommand(app))
	rootCmd.AddCommand(newInitCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newCompletionCommand())
}

// mustNewApp builds the production App. Construction only wires defaults
// and cannot fail today; the panic guards against future constructor
// errors slipping through init.
func mustNewApp() *App {
	app, err := NewApp(Dependencies{})
	if err != nil {
		panic(fmt.Sprintf("cqrsgen: building app: %v", err))
	}
	return app
}

// initLogging installs the charm logger as the process-wide slog handler.
// Internal packages log through slog only; this is the single place the
// sink and level are decided.
func initLogging() {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(logger))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
