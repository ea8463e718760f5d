package editor

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mocks/runner.gen.go -package=mocks

// Runner interface runs a program in the foreground, attached to the terminal.
type Runner interface {
	// Run runs name with args until it exits and returns its exit code.
	// The error is set only when the program could not be started.
	Run(ctx context.Context, name string, args ...string) (int, error)
}

type realRunner struct{}

// NewRunner creates a Runner inheriting the standard streams of the current process.
func NewRunner() Runner {
	return &realRunner{}
}

func (r *realRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
