// SPDX-License-Identifier: MPL-2.0

package fstree

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// dirTree is a Tree backed by the OS filesystem, rooted at a directory.
// Virtual paths resolve strictly inside the root; attempts to climb out
// fail with ErrPathOutsideRoot.
type dirTree struct {
	root string
}

// Dir returns a Tree rooted at the OS directory root. The directory does
// not have to exist yet; the first WriteFile creates it.
func Dir(root string) Tree {
	return &dirTree{root: root}
}

func (t *dirTree) ReadFile(p string) ([]byte, error) {
	resolved, err := t.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

func (t *dirTree) WriteFile(p string, data []byte) error {
	resolved, err := t.resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("creating parent directory for %s: %w", p, err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

func (t *dirTree) ReadDir(p string) ([]string, error) {
	resolved, err := t.resolve(p)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", p, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (t *dirTree) Exists(p string) bool {
	resolved, err := t.resolve(p)
	if err != nil {
		return false
	}
	_, err = os.Stat(resolved)
	return err == nil
}

// resolve maps a virtual path onto the OS path inside the root.
func (t *dirTree) resolve(p string) (string, error) {
	clean := path.Clean(p)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("resolving %q: %w", p, ErrPathOutsideRoot)
	}
	if clean == "." {
		return t.root, nil
	}
	return filepath.Join(t.root, filepath.FromSlash(clean)), nil
}
