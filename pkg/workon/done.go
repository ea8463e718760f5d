package workon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/workon/pkg/project"
	"github.com/lerenn/workon/pkg/workon/consts"
	"go.uber.org/multierr"
)

// DoneParams contains parameters for Done.
type DoneParams struct {
	Directory string
	// Project is the project to finish. Every project is finished when empty.
	Project string
	// Force removes projects without checking for unpushed work.
	Force bool
}

// Done removes one project, or every project of the working directory, when nothing would be lost.
func (w *realWorkon) Done(ctx context.Context, params DoneParams) error {
	return w.executeOperation(consts.Done, func() error {
		return w.done(ctx, params)
	})
}

func (w *realWorkon) done(ctx context.Context, params DoneParams) error {
	entries, err := w.deps.FS.ReadDir(params.Directory)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkingDirectoryAccess, err)
	}

	if params.Project != "" {
		return w.doneOne(ctx, params, entries)
	}
	return w.doneAll(ctx, params, entries)
}

// doneOne finishes the project named in params, which must be a directory of the working directory.
func (w *realWorkon) doneOne(ctx context.Context, params DoneParams, entries []os.DirEntry) error {
	ref, err := project.NewRef(params.Directory, params.Project)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Name() != ref.Name {
			continue
		}
		if !entry.IsDir() {
			return fmt.Errorf("%w: %q in %q is not a project directory", ErrProjectNotFound, ref.Name, params.Directory)
		}
		return w.finish(ctx, ref, params.Force)
	}

	return fmt.Errorf("%w: %q not found in %q", ErrProjectNotFound, ref.Name, params.Directory)
}

// doneAll finishes every project directory, then removes the remaining files and symbolic links.
// A project that cannot be finished is reported and skipped.
func (w *realWorkon) doneAll(ctx context.Context, params DoneParams, entries []os.DirEntry) error {
	var errs error

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		ref := project.Ref{Name: entry.Name(), Path: filepath.Join(params.Directory, entry.Name())}
		if err := w.finish(ctx, ref, params.Force); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			w.deps.Logger.Errorf("%v", err)
			errs = multierr.Append(errs, err)
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(params.Directory, entry.Name())
		if entry.Type()&os.ModeSymlink != 0 {
			w.deps.Logger.Debugf("Removing symlink %q", path)
		} else {
			w.deps.Logger.Debugf("Removing file %q", path)
		}

		if err := w.deps.FS.Remove(path); err != nil {
			w.deps.Logger.Errorf("Failed to remove %q: %v", path, err)
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrSomeProjectsNotFinished, errs)
	}
	return nil
}

// finish removes the project directory once the teardown checks pass.
func (w *realWorkon) finish(ctx context.Context, ref project.Ref, force bool) error {
	w.deps.Logger.Infof("Finishing up %q", ref.Name)

	verdict, err := w.deps.Evaluator.Evaluate(ctx, ref.Path, force)
	if err != nil {
		return fmt.Errorf("failed to check %q: %w", ref.Name, err)
	}
	if !verdict.Clean() {
		return verdict.Error(ref.Name)
	}

	w.deps.Logger.Debugf("Removing %q", ref.Path)
	if err := w.deps.FS.RemoveAll(ref.Path); err != nil {
		return fmt.Errorf("failed to remove %q: %w", ref.Path, err)
	}
	return nil
}
