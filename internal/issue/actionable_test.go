// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "generate command",
			},
			expected: "failed to generate command",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "cqrsgen.cue",
			},
			expected: "failed to load configuration: cqrsgen.cue",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to load configuration: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "update module file",
				Resource:  "src/users/users.module.ts",
				Cause:     errors.New("no providers array found"),
			},
			expected: "failed to update module file: src/users/users.module.ts: no providers array found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	// Test that Unwrap returns the cause (use errors.Is for proper comparison)
	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap() should return the cause error")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "simple error non-verbose",
			err: &ActionableError{
				Operation: "load configuration",
			},
			verbose:  false,
			contains: []string{"failed to load configuration"},
		},
		{
			name: "error with suggestions",
			err: &ActionableError{
				Operation:   "generate command",
				Resource:    "create-user",
				Suggestions: []string{"Run 'cqrsgen init'", "Pick a different target directory"},
			},
			verbose: false,
			contains: []string{
				"failed to generate command",
				"create-user",
				"• Run 'cqrsgen init'",
				"• Pick a different target directory",
			},
		},
		{
			name: "error chain in verbose mode",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error"),
			},
			verbose: true,
			contains: []string{
				"failed to load configuration",
				"Error chain:",
				"1. syntax error",
			},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error"),
			},
			verbose:  false,
			contains: []string{"failed to load configuration: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "generate command",
				Cause: &ActionableError{
					Operation: "update module file",
					Cause:     errors.New("no providers array found"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to update module file: no providers array found",
				"2. no providers array found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(tt.verbose)

			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}

			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Builder(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("update module file").
		WithResource("src/app.module.ts").
		WithSuggestion("Add a providers array").
		WithSuggestions("Check the file", "Rerun with --verbose").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil with an operation set")
	}
	if err.Operation != "update module file" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Resource != "src/app.module.ts" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if len(err.Suggestions) != 3 {
		t.Errorf("Suggestions = %v, want 3 entries", err.Suggestions)
	}
	if !errors.Is(err, cause) {
		t.Error("Build() lost the wrapped cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() = %v, want nil without operation", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() = %v, want nil without operation", got)
	}
}

func TestErrorContext_BuildError(t *testing.T) {
	err := NewErrorContext().WithOperation("generate query").BuildError()
	if err == nil {
		t.Fatal("BuildError() returned nil")
	}

	var actionable *ActionableError
	if !errors.As(err, &actionable) {
		t.Fatalf("BuildError() type = %T, want *ActionableError", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	got := WrapWithOperation(cause, "generate command")
	if got == nil {
		t.Fatal("WrapWithOperation() returned nil")
	}
	if got.Error() != "failed to generate command: boom" {
		t.Errorf("Error() = %q", got.Error())
	}
}

func TestWrapWithContext(t *testing.T) {
	if got := WrapWithContext(nil, "op", "res"); got != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	got := WrapWithContext(cause, "update module file", "src/app.module.ts")
	if got.Error() != "failed to update module file: src/app.module.ts: boom" {
		t.Errorf("Error() = %q", got.Error())
	}
}

func TestHasSuggestions(t *testing.T) {
	withSuggestions := &ActionableError{Operation: "x", Suggestions: []string{"try this"}}
	if !withSuggestions.HasSuggestions() {
		t.Error("HasSuggestions() = false with suggestions present")
	}

	without := &ActionableError{Operation: "x"}
	if without.HasSuggestions() {
		t.Error("HasSuggestions() = true with no suggestions")
	}
}
