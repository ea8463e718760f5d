//go:build integration

package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/workon/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRepository(t *testing.T) {
	g := NewGit(logger.NewNoopLogger())
	repo := SetupTestRepo(t)

	plain := t.TempDir()
	nested := filepath.Join(repo, "sub")
	require.NoError(t, os.Mkdir(nested, 0755))

	worktree := filepath.Join(t.TempDir(), "wt")
	RunGit(t, repo, "worktree", "add", "-b", "feature", worktree)

	tests := []struct {
		name     string
		dir      string
		expected bool
	}{
		{name: "repository root", dir: repo, expected: true},
		{name: "plain directory", dir: plain, expected: false},
		{name: "subdirectory of a repository", dir: nested, expected: false},
		{name: "linked worktree", dir: worktree, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isRepo, err := g.IsRepository(tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, isRepo)
		})
	}
}

func TestProbes_CleanRepository(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())
	repo := SetupTestRepo(t)

	stash, err := g.StashList(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, stash)

	commits, err := g.UnpushedBranches(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, commits)

	changes, err := g.UnstagedChanges(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, changes)

	tags, err := g.UnpushedTags(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestStashList(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())
	repo := SetupTestRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(repo, "README.md"), []byte("changed"), 0644))
	RunGit(t, repo, "stash")

	stash, err := g.StashList(ctx, repo)
	require.NoError(t, err)
	assert.Contains(t, stash, "stash@{0}")
}

func TestStashList_NotARepository(t *testing.T) {
	g := NewGit(logger.NewNoopLogger())

	// Keep git from discovering a repository above the temporary directory.
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())

	stash, err := g.StashList(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, stash)
}

func TestUnpushedBranches(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())
	repo := SetupTestRepo(t)

	RunGit(t, repo, "checkout", "-b", "feature")
	CommitFile(t, repo, "feature.txt", "feature")

	commits, err := g.UnpushedBranches(ctx, repo)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(commits), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "feature")
	assert.Contains(t, lines[0], "Add feature.txt")
}

func TestUnstagedChanges(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())
	repo := SetupTestRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(repo, "README.md"), []byte("changed"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "new.txt"), []byte("new"), 0644))

	changes, err := g.UnstagedChanges(ctx, repo)
	require.NoError(t, err)
	assert.Contains(t, changes, " M README.md")
	assert.Contains(t, changes, "?? new.txt")
}

func TestUnpushedTags(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())
	repo := SetupTestRepo(t)

	RunGit(t, repo, "tag", "v1.0.0")

	tags, err := g.UnpushedTags(ctx, repo)
	require.NoError(t, err)
	assert.Contains(t, tags, "new tag")
	assert.Contains(t, tags, "v1.0.0")

	RunGit(t, repo, "push", "--tags")

	tags, err = g.UnpushedTags(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestUnpushedTags_NoRemote(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())
	repo := SetupTestRepo(t)

	RunGit(t, repo, "remote", "remove", "origin")

	tags, err := g.UnpushedTags(ctx, repo)
	require.ErrorIs(t, err, ErrTagCheckFailed)
	assert.True(t, strings.HasPrefix(tags, "Failed to check unpushed tags: "))
}

func TestClone(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())
	remotes := t.TempDir()
	bare := SetupBareRemote(t, remotes, "my_project")

	target := filepath.Join(t.TempDir(), "my_project")
	require.NoError(t, g.Clone(ctx, CloneParams{RepoURL: bare, TargetPath: target}))

	isRepo, err := g.IsRepository(target)
	require.NoError(t, err)
	assert.True(t, isRepo)
	assert.FileExists(t, filepath.Join(target, "README.md"))
}

func TestClone_Failure(t *testing.T) {
	ctx := context.Background()
	g := NewGit(logger.NewNoopLogger())

	missing := filepath.Join(t.TempDir(), "missing.git")
	target := filepath.Join(t.TempDir(), "missing")

	err := g.Clone(ctx, CloneParams{RepoURL: missing, TargetPath: target})
	require.ErrorIs(t, err, ErrCloneFailed)
	assert.Contains(t, err.Error(), missing)
	assert.NoDirExists(t, target)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGit(logger.NewNoopLogger())
	_, err := g.StashList(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
