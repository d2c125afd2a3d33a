// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cqrsgen/cqrsgen/pkg/fstree"
	"github.com/cqrsgen/cqrsgen/pkg/vpath"
)

// moduleFileSuffix is the NestJS naming convention for aggregation module
// files (app.module.ts, users.module.ts).
const moduleFileSuffix = ".module.ts"

// locateModuleFile finds the module file to register the handler in: the
// directory one level above the target directory is scanned for files
// matching *.module.ts. Zero candidates (including an unreadable
// directory) and multiple candidates are reported as warning diagnostics;
// with multiple candidates the lexically first one wins.
func locateModuleFile(tree fstree.Tree, dir string) (string, []Diagnostic) {
	parent := vpath.Parent(dir)

	names, err := tree.ReadDir(parent)
	if err != nil {
		slog.Debug("module directory not listable", "dir", displayDir(parent), "error", err)
		return "", []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeModuleFileNotFound,
			Message:  fmt.Sprintf("no *%s file found in %s, skipping handler registration", moduleFileSuffix, displayDir(parent)),
			Path:     parent,
			Cause:    err,
		}}
	}

	var candidates []string
	for _, name := range names {
		if strings.HasSuffix(name, moduleFileSuffix) {
			candidates = append(candidates, name)
		}
	}

	switch len(candidates) {
	case 0:
		return "", []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeModuleFileNotFound,
			Message:  fmt.Sprintf("no *%s file found in %s, skipping handler registration", moduleFileSuffix, displayDir(parent)),
			Path:     parent,
		}}
	case 1:
		return vpath.Join(parent, candidates[0]), nil
	default:
		chosen := vpath.Join(parent, candidates[0])
		return chosen, []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeModuleFileAmbiguous,
			Message:  fmt.Sprintf("%d module files found in %s, registering in %s", len(candidates), displayDir(parent), candidates[0]),
			Path:     chosen,
		}}
	}
}

// displayDir renders a virtual directory for messages; the tree root shows
// as "." instead of an empty string.
func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
