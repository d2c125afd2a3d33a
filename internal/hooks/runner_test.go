// SPDX-License-Identifier: MPL-2.0

package hooks

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		script   string
		inv      Invocation
		validate func(t *testing.T, stdout string, err error)
	}{
		{
			name:   "exposes invocation through environment",
			script: "echo \"$CQRSGEN_KIND $CQRSGEN_NAME: $CQRSGEN_FILES\"",
			inv: Invocation{
				Name: "create-user",
				Kind: "command",
				Files: []string{
					"src/impl/create-user.command.ts",
					"src/handlers/create-user.handler.ts",
				},
			},
			validate: func(t *testing.T, stdout string, err error) {
				if err != nil {
					t.Fatalf("Run() error = %v", err)
				}
				want := "command create-user: src/impl/create-user.command.ts src/handlers/create-user.handler.ts\n"
				if stdout != want {
					t.Errorf("stdout = %q, want %q", stdout, want)
				}
			},
		},
		{
			name:   "non-zero exit becomes ExitError",
			script: "exit 3",
			validate: func(t *testing.T, _ string, err error) {
				var exitErr *ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("Run() error = %v, want *ExitError", err)
				}
				if exitErr.Code != 3 {
					t.Errorf("Code = %d, want 3", exitErr.Code)
				}
			},
		},
		{
			name:   "syntax error is not an ExitError",
			script: "if then fi (",
			validate: func(t *testing.T, _ string, err error) {
				if err == nil {
					t.Fatal("Run() error = nil, want syntax error")
				}
				var exitErr *ExitError
				if errors.As(err, &exitErr) {
					t.Errorf("Run() error = *ExitError, want parse failure")
				}
				if !strings.Contains(err.Error(), "hook syntax error") {
					t.Errorf("error %q missing syntax-error context", err)
				}
			},
		},
		{
			name:   "runs in the configured directory",
			script: "pwd",
			validate: func(t *testing.T, stdout string, err error) {
				if err != nil {
					t.Fatalf("Run() error = %v", err)
				}
				if strings.TrimSpace(stdout) == "" {
					t.Error("pwd produced no output")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			r := &Runner{Dir: t.TempDir(), Stdout: &stdout, Stderr: &stderr}
			err := r.Run(context.Background(), tt.script, tt.inv)
			tt.validate(t, stdout.String(), err)
		})
	}
}
