package git

import (
	"context"
	"fmt"
	"strings"
)

const newTagMarker = "new tag"

// UnpushedTags asks git which tags a push would send.
//
// git reports the dry run on stderr. When the dry run itself fails (no remote,
// unreachable remote, ...) the returned text describes the failure and the error
// wraps ErrTagCheckFailed, so that callers can tell it apart from real unpushed tags.
func (g *realGit) UnpushedTags(ctx context.Context, dir string) (string, error) {
	g.logger.Debugf("Checking for unpushed tags under %q", dir)

	res, err := g.run(ctx, dir, "push", "--tags", "--dry-run")
	if err != nil {
		return "", err
	}

	if res.exitErr != nil {
		output := "Failed to check unpushed tags: " + res.stderr
		return output, fmt.Errorf("%w under %q: %s", ErrTagCheckFailed, dir, strings.TrimSpace(res.stderr))
	}

	if !strings.Contains(res.stderr, newTagMarker) {
		return "", nil
	}
	return res.stderr, nil
}
