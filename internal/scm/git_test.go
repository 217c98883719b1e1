package scm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardbladh/rushstack/internal/testutil"
)

// capture records every git invocation instead of shelling out.
type capture struct {
	calls [][]string
	err   error
	out   []byte
}

func (c *capture) run(_ context.Context, _ string, args ...string) ([]byte, error) {
	c.calls = append(c.calls, args)
	return c.out, c.err
}

func captureGit(t *testing.T) (*Git, *capture) {
	t.Helper()
	c := &capture{}
	return &Git{Dir: "/repo", run: c.run}, c
}

func TestGitCommands(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)

	t.Run("checkout", func(t *testing.T) {
		g, c := captureGit(t)
		require.NoError(t, g.Checkout(ctx, "release/1.2", false))
		assert.Equal(t, [][]string{{"checkout", "release/1.2"}}, c.calls)
	})

	t.Run("checkout with create", func(t *testing.T) {
		g, c := captureGit(t)
		require.NoError(t, g.Checkout(ctx, "release/1.2", true))
		assert.Equal(t, [][]string{{"checkout", "-b", "release/1.2"}}, c.calls)
	})

	t.Run("merge", func(t *testing.T) {
		g, c := captureGit(t)
		require.NoError(t, g.Merge(ctx, "main"))
		assert.Equal(t, [][]string{{"merge", "main", "--no-edit"}}, c.calls)
	})

	t.Run("tag", func(t *testing.T) {
		g, c := captureGit(t)
		require.NoError(t, g.Tag(ctx, "v1.2.3"))
		assert.Equal(t, [][]string{{"tag", "-a", "v1.2.3", "-m", "v1.2.3"}}, c.calls)
	})

	t.Run("push", func(t *testing.T) {
		g, c := captureGit(t)
		require.NoError(t, g.Push(ctx, "origin", "v1.2.3"))
		assert.Equal(t, [][]string{{"push", "origin", "v1.2.3"}}, c.calls)
	})

	t.Run("failure folds output into the error", func(t *testing.T) {
		g, c := captureGit(t)
		c.err = errors.New("exit status 1")
		c.out = []byte("fatal: tag 'v1.2.3' already exists")

		err := g.Tag(ctx, "v1.2.3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git tag")
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestNewGit(t *testing.T) {
	t.Parallel()
	g := NewGit("/repo")
	assert.Equal(t, "/repo", g.Dir)
	assert.NotNil(t, g.run)
}
