package git

import "errors"

// Git-specific error types.
var (
	ErrGitNotAvailable = errors.New("failed to run git")
	ErrCloneFailed     = errors.New("failed to clone")
	ErrTagCheckFailed  = errors.New("failed to check unpushed tags")
	ErrRepositoryOpen  = errors.New("failed to open repository")
)
