// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cqrsgen/cqrsgen/internal/config"

	"github.com/spf13/cobra"
)

// newInitCommand creates the `cqrsgen init` command. It writes a starter
// project-scope cqrsgen.cue pinning generation defaults for everyone
// working on the project.
func newInitCommand(app *App) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [filename]",
		Short: "Create a cqrsgen.cue in the current directory",
		Long: `Create a cqrsgen.cue in the current directory.

The project-scope configuration file takes precedence over the user-scope
one and pins generation defaults (source root, layout, hooks) for the
whole project.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := config.ProjectFileName
			if len(args) > 0 {
				filename = args[0]
			}
			return runInit(app, filename, force)
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return initCmd
}

func runInit(app *App, filename string, force bool) error {
	if _, err := os.Stat(filename); err == nil && !force {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	content := config.GenerateCUE(config.DefaultConfig())

	// Guard against the generator and the schema drifting apart: a file we
	// cannot load back is worse than no file.
	if err := config.ValidateCUE([]byte(content), filename); err != nil {
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}

	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Fprintln(app.stdout)
	fmt.Fprintln(app.stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(app.stdout, "  1. Adjust source_root to match your project layout")
	fmt.Fprintln(app.stdout, "  2. Run 'cqrsgen generate command <name>' to generate a command")
	fmt.Fprintln(app.stdout, "  3. Run 'cqrsgen config show' to inspect the effective configuration")

	return nil
}
