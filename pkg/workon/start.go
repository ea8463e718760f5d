package workon

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/workon/pkg/git"
	"github.com/lerenn/workon/pkg/project"
	"github.com/lerenn/workon/pkg/workon/consts"
)

// StartParams contains parameters for Start.
type StartParams struct {
	// Directory is the working directory. It must exist.
	Directory string
	Project   string
	// Sources are tried in order.
	Sources []string
	NoOpen  bool
	// Editor is tried before $EDITOR and the fallback editors.
	Editor string
}

// Start clones the project from the first source that works, then opens it.
func (w *realWorkon) Start(ctx context.Context, params StartParams) error {
	return w.executeOperation(consts.Start, func() error {
		return w.start(ctx, params)
	})
}

func (w *realWorkon) start(ctx context.Context, params StartParams) error {
	ref, err := project.NewRef(params.Directory, params.Project)
	if err != nil {
		return err
	}

	exists, err := w.deps.FS.Exists(ref.Path)
	if err != nil {
		return fmt.Errorf("failed to look up %q: %w", ref.Path, err)
	}

	if exists {
		w.deps.Logger.Infof("The project is already in the working directory")
		if params.NoOpen {
			w.deps.Logger.Warnf("The command was executed for existing project with --noopen flag. Nothing to do.")
			return nil
		}
		return w.open(ctx, ref, params.Editor)
	}

	w.deps.Logger.Infof("Setting up %q", ref.Name)
	if err := w.clone(ctx, ref, params.Sources); err != nil {
		return err
	}

	if params.NoOpen {
		return nil
	}
	return w.open(ctx, ref, params.Editor)
}

// clone tries each source in order and stops at the first successful clone.
func (w *realWorkon) clone(ctx context.Context, ref project.Ref, sources []string) error {
	if len(sources) == 0 {
		return fmt.Errorf("%w to clone %q", ErrNoSources, ref.Name)
	}

	var lastErr error
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		url := ref.CloneURL(source)
		w.deps.Logger.Infof("Cloning %q to %q", url, ref.Path)

		err := w.deps.Git.Clone(ctx, git.CloneParams{RepoURL: url, TargetPath: ref.Path})
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, git.ErrGitNotAvailable) {
			return err
		}

		lastErr = err
		if i < len(sources)-1 {
			w.deps.Logger.Warnf("%v. Will try the next source", err)
		}
	}

	return fmt.Errorf("failed to clone %q, %w: %w", ref.Name, ErrAllSourcesFailed, lastErr)
}

// open opens the project directory in the editor.
func (w *realWorkon) open(ctx context.Context, ref project.Ref, editor string) error {
	isDir, err := w.deps.FS.IsDir(ref.Path)
	if err != nil || !isDir {
		return fmt.Errorf("%w: no project named %q found under your working directory", ErrProjectNotFound, ref.Name)
	}

	return w.deps.Editor.Open(ctx, ref.Path, editor)
}
