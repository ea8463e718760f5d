// Package editor opens files and directories in the user's editor.
package editor

import (
	"context"
	"fmt"
	"os"

	"github.com/lerenn/workon/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=editor.go -destination=mocks/editor.gen.go -package=mocks

// Fallback editors tried after the explicit one and $EDITOR.
var fallbackEditors = []string{"vi", "vim"}

// EnvEditor is the environment variable holding the user's default editor.
const EnvEditor = "EDITOR"

// Launcher interface opens a path in the first editor that works.
type Launcher interface {
	// Open tries the explicit editor, $EDITOR, vi then vim, and stops at the first one exiting successfully.
	Open(ctx context.Context, path, editor string) error
}

// Params contains parameters for creating a Launcher.
type Params struct {
	Runner Runner
	Logger logger.Logger
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

type realLauncher struct {
	runner    Runner
	logger    logger.Logger
	lookupEnv func(key string) (string, bool)
}

// NewLauncher creates a new Launcher instance.
func NewLauncher(params Params) Launcher {
	l := &realLauncher{
		runner:    params.Runner,
		logger:    params.Logger,
		lookupEnv: params.LookupEnv,
	}
	if l.runner == nil {
		l.runner = NewRunner()
	}
	if l.logger == nil {
		l.logger = logger.NewNoopLogger()
	}
	if l.lookupEnv == nil {
		l.lookupEnv = os.LookupEnv
	}
	return l
}

func (l *realLauncher) Open(ctx context.Context, path, editor string) error {
	for _, candidate := range l.candidates(editor) {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.logger.Infof("Trying to open %q with %q editor", path, candidate)

		code, err := l.runner.Run(ctx, candidate, path)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		switch {
		case err != nil:
			l.logger.Errorf("Failed to open %q with %q: %v", path, candidate, err)
		case code != 0:
			l.logger.Warnf("%q exited with status %d", candidate, code)
		default:
			return nil
		}
	}

	return fmt.Errorf("%w to open %q", ErrNoSuitableEditor, path)
}

// candidates lists the editors to try in order, skipping empty ones.
func (l *realLauncher) candidates(editor string) []string {
	env, _ := l.lookupEnv(EnvEditor)

	var candidates []string
	for _, candidate := range append([]string{editor, env}, fallbackEditors...) {
		if candidate != "" {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}
