package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// result holds the outcome of a git invocation that could be started.
type result struct {
	stdout string
	stderr string
	// exitErr is set when git exited with a non-zero status.
	exitErr error
}

// run executes git with args in dir. A non-zero exit status is not an error:
// it is reported in result.exitErr. Only a failure to start git, or a
// cancelled context, is returned as an error.
func (g *realGit) run(ctx context.Context, dir string, args ...string) (result, error) {
	g.logger.Debugf("Running \"git %s\" under %q", strings.Join(args, " "), dir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Messages are parsed, keep them untranslated.
	cmd.Env = append(os.Environ(), "LC_ALL=C")

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result{}, ctxErr
	}

	res := result{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result{}, fmt.Errorf("%w: %w", ErrGitNotAvailable, err)
		}
		res.exitErr = exitErr
		g.logger.Debugf("\"git %s\" exited with %d: %s", args[0], exitErr.ExitCode(), strings.TrimSpace(res.stderr))
	}

	return res, nil
}
