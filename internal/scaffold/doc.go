// SPDX-License-Identifier: MPL-2.0

// Package scaffold implements the CQRS artifact generation pipeline. A
// request carrying a feature name is normalized, rendered into a class
// file and a handler stub for the requested artifact kind, written into a
// caller-supplied virtual file tree, and finally registered in the nearest
// NestJS module file by patching its import block and providers array.
//
// The package never prints: recoverable findings are returned as
// Diagnostic values for the CLI layer to render, and fatal conditions are
// returned as typed errors.
package scaffold
