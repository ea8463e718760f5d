package git

import "context"

// UnstagedChanges executes `git status --short` in dir.
func (g *realGit) UnstagedChanges(ctx context.Context, dir string) (string, error) {
	g.logger.Debugf("Checking for unstaged changes under %q", dir)

	res, err := g.run(ctx, dir, "status", "--short")
	if err != nil {
		return "", err
	}
	return res.stdout, nil
}
