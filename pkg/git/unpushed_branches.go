package git

import "context"

// UnpushedBranches lists the commits of local branches that are absent from every remote,
// one `<short-hash> (<branch>) <message>` line per commit.
func (g *realGit) UnpushedBranches(ctx context.Context, dir string) (string, error) {
	g.logger.Debugf("Checking for unpushed commits under %q", dir)

	res, err := g.run(ctx, dir, "log", "--branches", "--not", "--remotes", "--decorate", "--oneline")
	if err != nil {
		return "", err
	}
	return res.stdout, nil
}
