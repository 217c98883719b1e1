// Package scm wraps the git commands the release pipeline needs. It is a
// thin process-invocation facade: no internal state machine, nothing beyond
// success or failure of each command.
package scm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/richardbladh/rushstack/internal/ctxlog"
)

// runner executes a git subcommand and returns its combined output.
type runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

func execGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Git invokes git against a single repository directory.
type Git struct {
	// Dir is the repository working directory; empty means the process
	// working directory.
	Dir string

	run runner
}

// NewGit creates a git wrapper for the given repository directory.
func NewGit(dir string) *Git {
	return &Git{Dir: dir, run: execGit}
}

func (g *Git) git(ctx context.Context, args ...string) error {
	ctxlog.FromContext(ctx).Debug("Running git command.", "args", args, "dir", g.Dir)
	out, err := g.run(ctx, g.Dir, args...)
	if err != nil {
		return fmt.Errorf("git %s: %w\n%s", strings.Join(args, " "), err, string(out))
	}
	return nil
}

// Checkout switches to the given branch, creating it first when create is
// set.
func (g *Git) Checkout(ctx context.Context, branch string, create bool) error {
	args := []string{"checkout"}
	if create {
		args = append(args, "-b")
	}
	args = append(args, branch)
	return g.git(ctx, args...)
}

// Merge merges the given branch into the current one.
func (g *Git) Merge(ctx context.Context, branch string) error {
	return g.git(ctx, "merge", branch, "--no-edit")
}

// Tag creates an annotated tag at HEAD.
func (g *Git) Tag(ctx context.Context, tag string) error {
	return g.git(ctx, "tag", "-a", tag, "-m", tag)
}

// Push pushes a ref to the given remote.
func (g *Git) Push(ctx context.Context, remote, ref string) error {
	return g.git(ctx, "push", remote, ref)
}
