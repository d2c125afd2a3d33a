// SPDX-License-Identifier: MPL-2.0

// Package fstree abstracts the file tree the generator reads and writes.
// All paths are virtual: slash-delimited and relative to the tree root,
// with "" (or ".") denoting the root itself. The generator never touches
// the OS directly, so the same pipeline runs against a real project
// directory, an in-memory tree in tests, or a copy-on-write overlay for
// dry runs.
package fstree

import "errors"

// ErrPathOutsideRoot reports a virtual path that resolves outside the tree
// root, e.g. "../etc/passwd" or an absolute path.
var ErrPathOutsideRoot = errors.New("path escapes the tree root")

// Tree is the filesystem surface the generator operates through. Missing
// files and directories are reported with errors satisfying
// errors.Is(err, fs.ErrNotExist).
type Tree interface {
	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file at path with data, creating any missing
	// parent directories.
	WriteFile(path string, data []byte) error
	// ReadDir lists the names of the regular files directly inside path,
	// sorted lexically. Subdirectories are not listed.
	ReadDir(path string) ([]string, error)
	// Exists reports whether a file or directory is present at path.
	Exists(path string) bool
}
