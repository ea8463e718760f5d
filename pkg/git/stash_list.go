package git

import "context"

// StashList executes `git stash list` in dir.
// A directory that is not version-controlled yields an empty result.
func (g *realGit) StashList(ctx context.Context, dir string) (string, error) {
	g.logger.Debugf("Checking git stashes under %q", dir)

	res, err := g.run(ctx, dir, "stash", "list")
	if err != nil {
		return "", err
	}
	return res.stdout, nil
}
