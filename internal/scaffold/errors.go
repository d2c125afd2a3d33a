// SPDX-License-Identifier: MPL-2.0

package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingName reports a generation request whose feature name is
	// empty after normalization. Nothing has been written when this is
	// returned.
	ErrMissingName = errors.New("feature name is required")

	// ErrNoProvidersArray reports a module file that has no providers array
	// to register the handler in. The file is left untouched.
	ErrNoProvidersArray = errors.New("no providers array found")
)

// TargetExistsError reports an artifact path that is already occupied.
// The whole generation is rejected before any write.
type TargetExistsError struct {
	// Path is the occupied virtual path.
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("target file %s already exists", e.Path)
}

// ModulePatchError wraps a failure while registering the handler in the
// aggregation module file. The artifact files have already been written
// when this error is returned; only the registration step failed.
type ModulePatchError struct {
	// Path is the module file involved.
	Path string
	// Cause is the underlying failure (read, patch, or write).
	Cause error
}

func (e *ModulePatchError) Error() string {
	return fmt.Sprintf("updating module file %s: %v", e.Path, e.Cause)
}

func (e *ModulePatchError) Unwrap() error { return e.Cause }
