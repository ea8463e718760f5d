package git

import (
	"context"
	"fmt"
	"strings"
)

// Clone clones a repository to the specified path.
func (g *realGit) Clone(ctx context.Context, params CloneParams) error {
	g.logger.Debugf("Cloning %q to %q", params.RepoURL, params.TargetPath)

	res, err := g.run(ctx, "", "clone", params.RepoURL, params.TargetPath)
	if err != nil {
		return err
	}

	if res.exitErr != nil {
		return fmt.Errorf("%w %q: %s", ErrCloneFailed, params.RepoURL, strings.TrimSpace(res.stderr))
	}
	return nil
}
