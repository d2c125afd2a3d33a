// SPDX-License-Identifier: MPL-2.0

package scaffold

const (
	// SeverityWarning indicates a recoverable finding; generation continues.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal error diagnostic.
	SeverityError Severity = "error"
)

// Diagnostic codes emitted by the generation pipeline.
const (
	// CodeModuleFileNotFound: no *.module.ts file exists next to the target
	// directory, so handler registration was skipped.
	CodeModuleFileNotFound = "module_file_not_found"
	// CodeModuleFileAmbiguous: several *.module.ts candidates exist; the
	// lexically first one was patched.
	CodeModuleFileAmbiguous = "module_file_ambiguous"
	// CodeReservedFileName: the feature name is a Windows reserved device
	// name, so the generated files cannot exist on Windows checkouts.
	CodeReservedFileName = "reserved_file_name"
	// CodeConfigLoadFailed: configuration could not be loaded; generation
	// proceeded with built-in defaults.
	CodeConfigLoadFailed = "config_load_failed"
	// CodeHookSkipped: a post-generation hook is configured but was not
	// run (dry run).
	CodeHookSkipped = "hook_skipped"
)

type (
	// Severity represents a diagnostic level.
	Severity string

	// Diagnostic represents a structured, non-fatal finding that is returned
	// to callers (rather than written to stderr) for consistent rendering
	// policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "module_file_not_found").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the virtual path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)
