// Package git implements read-only version control queries by shelling out to git.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionControl = (*Client)(nil)

// Client runs git as a subprocess and parses its output.
type Client struct {
	binary string
}

// NewClient creates a Client that uses the git binary found on PATH.
func NewClient() *Client {
	return &Client{binary: "git"}
}

// NewClientWithBinary creates a Client using a specific git executable.
func NewClientWithBinary(binary string) *Client {
	return &Client{binary: binary}
}

// ShortCommit returns the abbreviated hash of HEAD.
func (c *Client) ShortCommit(ctx context.Context, dir string) (string, error) {
	return c.revParse(ctx, dir, "--short", "HEAD")
}

// Branch returns the name of the checked out branch ("HEAD" when detached).
func (c *Client) Branch(ctx context.Context, dir string) (string, error) {
	return c.revParse(ctx, dir, "--abbrev-ref", "HEAD")
}

func (c *Client) revParse(ctx context.Context, dir string, args ...string) (string, error) {
	args = append([]string{"rev-parse"}, args...)
	cmd := exec.CommandContext(ctx, c.binary, args...) //nolint:gosec // fixed git subcommand
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		err = zerr.With(zerr.Wrap(err, "git query failed"), "args", strings.Join(args, " "))
		return "", zerr.With(err, "stderr", strings.TrimSpace(stderr.String()))
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", zerr.With(zerr.New("git returned no output"), "args", strings.Join(args, " "))
	}
	return out, nil
}
