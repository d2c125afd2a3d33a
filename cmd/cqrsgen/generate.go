// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cqrsgen/cqrsgen/internal/config"
	"github.com/cqrsgen/cqrsgen/internal/hooks"
	"github.com/cqrsgen/cqrsgen/internal/issue"
	"github.com/cqrsgen/cqrsgen/internal/scaffold"
	"github.com/cqrsgen/cqrsgen/pkg/fstree"

	"github.com/spf13/cobra"
)

// generateFlags holds the flag values shared by every generate subcommand.
type generateFlags struct {
	path       string
	flat       bool
	skipImport bool
	dryRun     bool
}

// newGenerateCommand creates the `cqrsgen generate` command tree with one
// subcommand per artifact kind. The kinds share a single pipeline; the
// subcommands only differ in the Kind they pass along.
func newGenerateCommand(app *App) *cobra.Command {
	genCmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate CQRS boilerplate files",
		Long: `Generate CQRS boilerplate files.

Each generation creates a class file with its payload shape and a handler
stub, then registers the handler in the nearest *.module.ts providers
array (the directory one level above the target directory is scanned).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	aliases := map[string][]string{
		scaffold.Command.Name: {"c"},
		scaffold.Query.Name:   {"q"},
	}

	for _, kind := range scaffold.Kinds() {
		kind := kind
		flags := &generateFlags{}
		sub := &cobra.Command{
			Use:     kind.Name + " <name>",
			Aliases: aliases[kind.Name],
			Short:   fmt.Sprintf("Generate a %s class and its handler", kind.Name),
			Args:    cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := ""
				if len(args) > 0 {
					name = args[0]
				}
				return runGenerate(cmd.Context(), app, kind, name, *flags)
			},
		}
		sub.Flags().StringVarP(&flags.path, "path", "p", "", "target directory (default: configured source root)")
		sub.Flags().BoolVar(&flags.flat, "flat", false, "place both files directly in the target directory")
		sub.Flags().BoolVar(&flags.skipImport, "skip-import", false, "do not register the handler in the module file")
		sub.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print what would be generated without writing")
		genCmd.AddCommand(sub)
	}

	return genCmd
}

// runGenerate is the shared pipeline behind `generate command` and
// `generate query`: load config, run the scaffold generator against the
// working directory (or a copy-on-write overlay for --dry-run), render
// diagnostics, report the outcome, and fire the post-generation hook.
func runGenerate(ctx context.Context, app *App, kind scaffold.Kind, name string, flags generateFlags) error {
	cfg, cfgDiags := loadConfigWithFallback(ctx, app.Config, cfgFile)
	app.Diagnostics.Render(ctx, cfgDiags, app.stderr)

	req := scaffold.Request{
		Name:       name,
		Dir:        flags.path,
		Flat:       flags.flat || cfg.Generate.Flat,
		SkipImport: flags.skipImport || cfg.Generate.SkipImport,
	}
	if req.Dir == "" {
		req.Dir = string(cfg.SourceRoot)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	tree := fstree.Dir(wd)
	if flags.dryRun {
		// Copy-on-write view: the full pipeline runs, nothing reaches disk.
		tree = fstree.NewOverlay(tree)
	}

	res, genErr := app.Generator.Generate(ctx, tree, kind, req)
	if res != nil {
		app.Diagnostics.Render(ctx, res.Diagnostics, app.stderr)
		reportGeneration(app, res, flags.dryRun)
	}
	if genErr != nil {
		return generationError(app, genErr, cfg)
	}

	if cfg.Hooks.PostGenerate == "" {
		return nil
	}
	if flags.dryRun {
		app.Diagnostics.Render(ctx, []scaffold.Diagnostic{{
			Severity: scaffold.SeverityWarning,
			Code:     scaffold.CodeHookSkipped,
			Message:  "post-generation hook not run (dry run)",
		}}, app.stderr)
		return nil
	}
	return runPostGenerateHook(ctx, app, cfg, kind, res)
}

// reportGeneration prints the files a generation produced. Dry runs label
// every line and nothing has been written.
func reportGeneration(app *App, res *scaffold.Result, dryRun bool) {
	marker := SuccessStyle.Render("✓")
	verb := "Created"
	if dryRun {
		marker = VerboseStyle.Render("→")
		verb = "Would create"
	}

	for _, f := range res.Files() {
		fmt.Fprintf(app.stdout, "%s %s %s\n", marker, verb, PathStyle.Render(f))
	}
	if res.ModuleFile != "" {
		patchVerb := "Updated"
		if dryRun {
			patchVerb = "Would update"
		}
		fmt.Fprintf(app.stdout, "%s %s %s\n", marker, patchVerb, PathStyle.Render(res.ModuleFile))
	}
}

// generationError maps a pipeline failure to its issue card and exit code.
// Missing input exits with code 2; everything else with 1.
func generationError(app *App, err error, cfg *config.Config) error {
	var (
		targetErr *scaffold.TargetExistsError
		patchErr  *scaffold.ModulePatchError
	)

	switch {
	case errors.Is(err, scaffold.ErrMissingName):
		renderIssue(app, issue.FeatureNameMissingId, cfg)
		return &ExitError{Code: exitInvalidInput, Err: err}
	case errors.As(err, &targetErr):
		renderIssue(app, issue.TargetExistsId, cfg)
		return &ExitError{Code: exitFailure, Err: err}
	case errors.As(err, &patchErr) && errors.Is(err, scaffold.ErrNoProvidersArray):
		renderIssue(app, issue.ProvidersArrayMissingId, cfg)
		return &ExitError{Code: exitFailure, Err: err}
	default:
		fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: exitFailure, Err: err}
	}
}

// runPostGenerateHook fires the configured hooks.post_generate command for
// a generation that wrote files. Hook failures do not undo the artifacts;
// they surface as an issue card and a non-zero exit.
func runPostGenerateHook(ctx context.Context, app *App, cfg *config.Config, kind scaffold.Kind, res *scaffold.Result) error {
	inv := hooks.Invocation{
		Name:  res.Name,
		Kind:  kind.Name,
		Files: res.Files(),
	}
	if err := app.Hooks.Run(ctx, cfg.Hooks.PostGenerate.String(), inv); err != nil {
		renderIssue(app, issue.HookFailedId, cfg)
		return &ExitError{Code: exitFailure, Err: err}
	}
	return nil
}

// renderIssue writes the markdown card for id to stderr, falling back to
// nothing when rendering fails (the plain error still follows).
func renderIssue(app *App, id issue.Id, cfg *config.Config) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	rendered, err := card.Render(glamourStyle(cfg))
	if err != nil {
		return
	}
	fmt.Fprint(app.stderr, rendered)
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle(cfg *config.Config) string {
	if cfg != nil && cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
