// SPDX-License-Identifier: MPL-2.0

package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// Invocation describes one generation the hook reacts to. The fields
	// are exported to the script as CQRSGEN_* environment variables.
	Invocation struct {
		// Name is the dash-cased feature name.
		Name string
		// Kind is the artifact kind keyword ("command" or "query").
		Kind string
		// Files are the paths written by the generation, project-relative.
		Files []string
	}

	// Runner executes hook scripts inside a project directory.
	Runner struct {
		// Dir is the working directory scripts run in.
		Dir string
		// Stdout and Stderr receive the script's output. Nil writers
		// default to the process streams.
		Stdout io.Writer
		Stderr io.Writer
	}

	// ExitError reports a hook script that ran but exited non-zero.
	ExitError struct {
		// Code is the script's exit status.
		Code int
	}
)

func (e *ExitError) Error() string {
	return fmt.Sprintf("hook exited with status %d", e.Code)
}

// Run parses and executes script with the invocation exposed through the
// environment. A syntax error in the script and a non-zero exit are both
// returned as errors; the latter as *ExitError so callers can surface the
// status code.
func (r *Runner) Run(ctx context.Context, script string, inv Invocation) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "post_generate")
	if err != nil {
		return fmt.Errorf("hook syntax error: %w", err)
	}

	env := append(os.Environ(),
		"CQRSGEN_NAME="+inv.Name,
		"CQRSGEN_KIND="+inv.Kind,
		"CQRSGEN_FILES="+strings.Join(inv.Files, " "),
	)

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runner, err := interp.New(
		interp.Dir(r.Dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create hook interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &ExitError{Code: int(status)}
		}
		return fmt.Errorf("hook execution failed: %w", err)
	}
	return nil
}
