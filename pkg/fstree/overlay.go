// SPDX-License-Identifier: MPL-2.0

package fstree

import (
	"errors"
	"io/fs"
	"sort"
)

// Overlay is a copy-on-write view over a base tree: reads fall through to
// the base, writes land in a private in-memory layer and never reach it.
// Dry runs execute the full generation pipeline against an Overlay and
// report the captured writes instead of committing them.
type Overlay struct {
	base    Tree
	changes *Mem
}

// NewOverlay returns an Overlay over base with an empty write layer.
func NewOverlay(base Tree) *Overlay {
	return &Overlay{base: base, changes: NewMem()}
}

func (o *Overlay) ReadFile(p string) ([]byte, error) {
	data, err := o.changes.ReadFile(p)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.base.ReadFile(p)
}

func (o *Overlay) WriteFile(p string, data []byte) error {
	return o.changes.WriteFile(p, data)
}

func (o *Overlay) ReadDir(p string) ([]string, error) {
	baseNames, baseErr := o.base.ReadDir(p)
	memNames, memErr := o.changes.ReadDir(p)
	if baseErr != nil && memErr != nil {
		return nil, baseErr
	}

	seen := make(map[string]bool, len(baseNames)+len(memNames))
	var names []string
	for _, n := range append(baseNames, memNames...) {
		if seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (o *Overlay) Exists(p string) bool {
	return o.changes.Exists(p) || o.base.Exists(p)
}

// Changed returns the paths written through the overlay, sorted.
func (o *Overlay) Changed() []string {
	return o.changes.Paths()
}
