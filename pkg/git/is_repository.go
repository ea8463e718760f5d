package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// IsRepository checks if dir is the root of a git working tree.
// Both a .git directory and a .git file pointing to a gitdir are accepted.
func (g *realGit) IsRepository(dir string) (bool, error) {
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          false,
		EnableDotGitCommonDir: true,
	})
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return false, nil
	}
	return false, fmt.Errorf("%w %q: %w", ErrRepositoryOpen, dir, err)
}
