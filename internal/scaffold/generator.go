// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cqrsgen/cqrsgen/pkg/fstree"
	"github.com/cqrsgen/cqrsgen/pkg/platform"
	"github.com/cqrsgen/cqrsgen/pkg/vpath"
)

// DefaultSourceRoot is the target directory used when a request leaves Dir
// empty and no other root is configured.
const DefaultSourceRoot = "src"

type (
	// Options configures a Generator.
	Options struct {
		// SourceRoot is the default target directory for requests without
		// an explicit Dir. Defaults to DefaultSourceRoot.
		SourceRoot string
		// Logger receives debug traces. Defaults to slog.Default().
		Logger *slog.Logger
	}

	// Generator runs the generation pipeline against one file tree. The
	// tree is owned by the caller: production passes a tree rooted at the
	// project directory, dry runs pass a copy-on-write overlay, tests pass
	// an in-memory tree.
	Generator struct {
		tree       fstree.Tree
		sourceRoot string
		log        *slog.Logger
	}

	// Result reports what one generation produced.
	Result struct {
		// Name is the canonical dash-cased feature name the artifacts were
		// derived from.
		Name string
		// ClassFile and HandlerFile are the artifact paths written, in
		// emission order.
		ClassFile   string
		HandlerFile string
		// ModuleFile is the aggregation file the handler was registered
		// in, or "" when registration was skipped, no module file was
		// found, or the handler was already registered.
		ModuleFile string
		// Diagnostics carries non-fatal findings for the caller to render.
		Diagnostics []Diagnostic
	}
)

// New returns a Generator writing through tree.
func New(tree fstree.Tree, opts Options) *Generator {
	if opts.SourceRoot == "" {
		opts.SourceRoot = DefaultSourceRoot
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Generator{tree: tree, sourceRoot: opts.SourceRoot, log: opts.Logger}
}

// Files returns the artifact paths the generation wrote, in emission
// order.
func (r *Result) Files() []string {
	var files []string
	for _, f := range []string{r.ClassFile, r.HandlerFile} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

// Generate produces the class and handler artifacts for kind and
// registers the handler in the nearest module file.
//
// Validation and collision failures are reported before anything is
// written. Later failures do not roll back: the returned Result still
// lists the artifact files already on disk, and registration failures
// come back as *ModulePatchError so callers can tell them apart from
// emission failures.
func (g *Generator) Generate(ctx context.Context, kind Kind, req Request) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	n, err := req.normalize(kind, g.sourceRoot)
	if err != nil {
		return nil, err
	}
	g.log.Debug("generating artifacts",
		"kind", kind.Name, "name", n.Name, "dir", n.Dir, "flat", req.Flat)

	var diags []Diagnostic
	if platform.IsWindowsReservedName(n.Name) {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeReservedFileName,
			Message:  fmt.Sprintf("%q is a reserved device name on Windows; the generated files will not be checkoutable there", n.Name),
			Path:     n.ClassFile,
		})
	}

	for _, p := range []string{n.ClassFile, n.HandlerFile} {
		if g.tree.Exists(p) {
			return nil, &TargetExistsError{Path: p}
		}
	}

	classContent := renderName(kind.classTemplate, n.Name)
	handlerContent := renderName(
		strings.ReplaceAll(kind.handlerTemplate, importPathToken, n.ImportPath), n.Name)

	if err := g.tree.WriteFile(n.ClassFile, []byte(classContent)); err != nil {
		return nil, err
	}
	res := &Result{Name: n.Name, ClassFile: n.ClassFile, Diagnostics: diags}
	if err := g.tree.WriteFile(n.HandlerFile, []byte(handlerContent)); err != nil {
		return res, err
	}
	res.HandlerFile = n.HandlerFile

	if req.SkipImport {
		return res, nil
	}
	return res, g.registerHandler(n, res)
}

// registerHandler patches the module file next to the target directory so
// the new handler is imported and listed in the providers array.
func (g *Generator) registerHandler(n normalized, res *Result) error {
	modulePath, diags := locateModuleFile(g.tree, n.Dir)
	res.Diagnostics = append(res.Diagnostics, diags...)
	if modulePath == "" {
		return nil
	}

	content, err := g.tree.ReadFile(modulePath)
	if err != nil {
		return &ModulePatchError{Path: modulePath, Cause: err}
	}

	importSpec := vpath.Rel(vpath.Parent(modulePath), vpath.TrimExt(n.HandlerFile))
	patched, err := applyModulePatch(string(content), n.HandlerName, importSpec)
	if err != nil {
		return &ModulePatchError{Path: modulePath, Cause: err}
	}
	if patched == string(content) {
		g.log.Debug("handler already registered", "module", modulePath, "handler", n.HandlerName)
		return nil
	}

	if err := g.tree.WriteFile(modulePath, []byte(patched)); err != nil {
		return &ModulePatchError{Path: modulePath, Cause: err}
	}
	res.ModuleFile = modulePath
	return nil
}
