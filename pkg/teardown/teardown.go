// Package teardown decides whether a project directory can be removed without losing work.
package teardown

import (
	"context"
	"errors"

	"github.com/lerenn/workon/pkg/config"
	"github.com/lerenn/workon/pkg/git"
	"github.com/lerenn/workon/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=teardown.go -destination=mocks/teardown.gen.go -package=mocks

// Evaluator interface decides whether a project directory is safe to delete.
type Evaluator interface {
	// Evaluate runs the safety checks on the project at path. With force, no check is run.
	Evaluate(ctx context.Context, path string, force bool) (Verdict, error)
}

// Params contains parameters for creating an Evaluator.
type Params struct {
	Git    git.Git
	Logger logger.Logger
	Config config.TeardownConfig
}

type realEvaluator struct {
	git                    git.Git
	logger                 logger.Logger
	reportAll              bool
	blockOnTagCheckFailure bool
}

// check runs one probe; a non-empty output fails the check.
type check struct {
	name  string
	probe func(ctx context.Context, dir string) (string, error)
}

// NewEvaluator creates a new Evaluator instance.
func NewEvaluator(params Params) Evaluator {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realEvaluator{
		git:                    params.Git,
		logger:                 log,
		reportAll:              params.Config.ReportAll,
		blockOnTagCheckFailure: params.Config.BlockOnTagCheckFailure(),
	}
}

// Evaluate runs stash, unpushed commits, unstaged changes and unpushed tags checks in this order.
// It stops at the first failing check unless every reason is requested.
func (e *realEvaluator) Evaluate(ctx context.Context, path string, force bool) (Verdict, error) {
	if force {
		e.logger.Debugf("Forced removal of %q, skipping checks", path)
		return Verdict{}, nil
	}

	isRepo, err := e.git.IsRepository(path)
	if err != nil {
		return Verdict{}, err
	}
	if !isRepo {
		e.logger.Debugf("Not a git repository: %q", path)
		return Verdict{}, nil
	}

	checks := []check{
		{name: CheckStash, probe: e.git.StashList},
		{name: CheckUnpushedCommits, probe: e.git.UnpushedBranches},
		{name: CheckUnstagedChanges, probe: e.git.UnstagedChanges},
		{name: CheckUnpushedTags, probe: e.unpushedTags},
	}

	var verdict Verdict
	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			return Verdict{}, err
		}

		output, err := c.probe(ctx, path)
		failed := errors.Is(err, git.ErrTagCheckFailed)
		if err != nil && !failed {
			return Verdict{}, err
		}
		if output == "" {
			continue
		}

		verdict.Blocked = true
		verdict.Reasons = append(verdict.Reasons, Reason{Check: c.name, Output: output, Failed: failed})
		if !e.reportAll {
			break
		}
	}

	return verdict, nil
}

// unpushedTags passes a failed tag query through as a blocking failure or, when configured,
// turns it into a warning.
func (e *realEvaluator) unpushedTags(ctx context.Context, dir string) (string, error) {
	output, err := e.git.UnpushedTags(ctx, dir)
	if err == nil {
		return output, nil
	}
	if !errors.Is(err, git.ErrTagCheckFailed) {
		return "", err
	}

	if !e.blockOnTagCheckFailure {
		e.logger.Warnf("%v. Ignoring", err)
		return "", nil
	}
	return output, err
}
