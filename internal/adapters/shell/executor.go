// Package shell provides the external tool executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
// Tool output is streamed unbuffered to the configured writers and never retained.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor that streams to the process's stdout and stderr.
func NewExecutor(logger ports.Logger) *Executor {
	return NewExecutorWithOutput(logger, os.Stdout, os.Stderr)
}

// NewExecutorWithOutput creates an Executor streaming to the given writers.
func NewExecutorWithOutput(logger ports.Logger, stdout, stderr io.Writer) *Executor {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Executor{
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run starts the tool and blocks until it exits. There is no timeout: a hung tool
// blocks until ctx is cancelled.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) (domain.ExitStatus, error) {
	if inv.Path == "" {
		return -1, zerr.With(zerr.New("empty tool path"), "tool", inv.Name)
	}

	e.logger.Info("Running: " + strings.Join(inv.Argv(), " "))

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) //nolint:gosec // tool paths come from project configuration
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}

	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.ExitStatus(exitErr.ExitCode()), nil
		}
		err = zerr.With(zerr.Wrap(err, "failed to start tool"), "tool", inv.Name)
		return -1, zerr.With(err, "path", inv.Path)
	}

	return 0, nil
}
