// SPDX-License-Identifier: MPL-2.0

package fstree

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Mem is an in-memory Tree. Directories exist implicitly: a directory is
// present exactly when some file lives at or below it. The zero value is
// not usable; construct with NewMem.
type Mem struct {
	files map[string][]byte
}

// NewMem returns an empty in-memory tree.
func NewMem() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

func (m *Mem) ReadFile(p string) ([]byte, error) {
	data, ok := m.files[memKey(p)]
	if !ok {
		return nil, fmt.Errorf("reading %s: %w", p, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

func (m *Mem) WriteFile(p string, data []byte) error {
	m.files[memKey(p)] = append([]byte(nil), data...)
	return nil
}

func (m *Mem) ReadDir(p string) ([]string, error) {
	prefix := memKey(p)
	if prefix != "" {
		prefix += "/"
	}

	var names []string
	found := prefix == ""
	for key := range m.files {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		found = true
		rest := key[len(prefix):]
		if !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}
	if !found {
		return nil, fmt.Errorf("listing %s: %w", p, fs.ErrNotExist)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Mem) Exists(p string) bool {
	key := memKey(p)
	if key == "" {
		return true
	}
	if _, ok := m.files[key]; ok {
		return true
	}
	prefix := key + "/"
	for k := range m.files {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Paths returns every file path in the tree, sorted. Intended for tests
// and dry-run reporting.
func (m *Mem) Paths() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// memKey canonicalizes a virtual path into a map key. Climbing components
// are clamped at the root rather than rejected; an in-memory tree has
// nothing outside itself to protect.
func memKey(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}
