// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"strings"

	"github.com/cqrsgen/cqrsgen/pkg/naming"
	"github.com/cqrsgen/cqrsgen/pkg/vpath"
)

// Request carries the user input for one generation.
type Request struct {
	// Name is the feature name in any supported spelling ("CreateUser",
	// "create user", "create-user"). Required.
	Name string
	// Dir is the virtual directory receiving the artifacts. Empty picks
	// the generator's configured source root.
	Dir string
	// Flat places both artifacts directly in Dir instead of the impl/ and
	// handlers/ subdirectories.
	Flat bool
	// SkipImport leaves the aggregation module file untouched.
	SkipImport bool
}

// normalized is a Request after canonicalization: the dash-case feature
// name, the trailing-slash target directory, and every name and path the
// rest of the pipeline derives from them.
type normalized struct {
	Name        string
	Dir         string
	ClassName   string
	HandlerName string
	ClassFile   string
	HandlerFile string
	// ImportPath is the class import specifier rendered into the handler.
	ImportPath string
}

// normalize canonicalizes the request for kind. Normalizing is idempotent:
// a request built from an already normalized name and directory maps to
// the same artifacts.
func (r Request) normalize(kind Kind, sourceRoot string) (normalized, error) {
	name := naming.Dasherize(r.Name)
	if name == "" {
		return normalized{}, ErrMissingName
	}

	dir := strings.TrimSpace(r.Dir)
	if dir == "" {
		dir = sourceRoot
	}
	dir = vpath.EnsureTrailingSlash(vpath.Join(dir))

	n := normalized{
		Name:        name,
		Dir:         dir,
		ClassName:   naming.Classify(name) + kind.ClassSuffix,
		HandlerName: naming.Classify(name) + "Handler",
	}

	classBase := name + "." + kind.Name
	if r.Flat {
		n.ClassFile = dir + classBase + ".ts"
		n.HandlerFile = dir + name + ".handler.ts"
		n.ImportPath = vpath.Rel(dir, dir+classBase)
	} else {
		n.ClassFile = dir + "impl/" + classBase + ".ts"
		n.HandlerFile = dir + "handlers/" + name + ".handler.ts"
		n.ImportPath = vpath.Rel(dir+"handlers/", dir+"impl/"+classBase)
	}
	return n, nil
}
