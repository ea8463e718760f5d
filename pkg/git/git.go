// Package git provides the version-control probes used to decide whether a project may be removed.
package git

import (
	"context"

	"github.com/lerenn/workon/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
// Probes return the raw output of the git command without interpreting it.
type Git interface {
	// IsRepository checks if dir is the root of a git working tree. Parent repositories are ignored.
	IsRepository(dir string) (bool, error)

	// StashList executes `git stash list` in dir.
	StashList(ctx context.Context, dir string) (string, error)

	// UnpushedBranches executes `git log --branches --not --remotes --decorate --oneline` in dir.
	UnpushedBranches(ctx context.Context, dir string) (string, error)

	// UnstagedChanges executes `git status --short` in dir.
	UnstagedChanges(ctx context.Context, dir string) (string, error)

	// UnpushedTags executes `git push --tags --dry-run` in dir and returns its output
	// when it reports new tags, an empty string otherwise.
	UnpushedTags(ctx context.Context, dir string) (string, error)

	// Clone clones a repository to the specified path.
	Clone(ctx context.Context, params CloneParams) error
}

type realGit struct {
	logger logger.Logger
}

// NewGit creates a new Git instance.
func NewGit(log logger.Logger) Git {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realGit{logger: log}
}
