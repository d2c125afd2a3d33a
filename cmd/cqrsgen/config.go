// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cqrsgen/cqrsgen/internal/config"
	"github.com/cqrsgen/cqrsgen/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `cqrsgen config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cqrsgen configuration",
		Long: `Manage cqrsgen configuration.

Configuration is resolved in order of precedence:
  1. The file given via --config
  2. cqrsgen.cue in the current directory
  3. The user-scope file:
     - Linux: ~/.config/cqrsgen/config.cue
     - macOS: ~/Library/Application Support/cqrsgen/config.cue
     - Windows: %APPDATA%\cqrsgen\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default user-scope configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initUserConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{})
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{})
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(app.stderr, rendered)
		return err
	}

	keyStyle := PathStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	// The provider does not report which file it resolved, so rederive the
	// effective path for display.
	path, found, err := config.ResolvePath(config.LoadOptions{})
	switch {
	case err == nil && found:
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	default:
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("source_root"), valueStyle.Render(string(cfg.SourceRoot)))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("generate"))
	fmt.Fprintf(app.stdout, "  flat: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Generate.Flat)))
	fmt.Fprintf(app.stdout, "  skip_import: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Generate.SkipImport)))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("hooks"))
	if cfg.Hooks.PostGenerate == "" {
		fmt.Fprintf(app.stdout, "  post_generate: %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		fmt.Fprintf(app.stdout, "  post_generate: %s\n", valueStyle.Render(cfg.Hooks.PostGenerate.String()))
	}

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(app.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initUserConfig(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s%cconfig.cue\n",
		SuccessStyle.Render("✓"), cfgDir, os.PathSeparator)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "User config file: %s%cconfig.cue\n", cfgDir, os.PathSeparator)
	fmt.Fprintf(app.stdout, "Project config file: %s (when present)\n", config.ProjectFileName)
	return nil
}
