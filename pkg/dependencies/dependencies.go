// Package dependencies provides a centralized dependency container for the gw application.
package dependencies

import (
	"errors"

	"github.com/lerenn/workon/pkg/config"
	"github.com/lerenn/workon/pkg/editor"
	"github.com/lerenn/workon/pkg/fs"
	"github.com/lerenn/workon/pkg/git"
	"github.com/lerenn/workon/pkg/logger"
	"github.com/lerenn/workon/pkg/teardown"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing        = errors.New("fs dependency is required but not set")
	ErrGitMissing       = errors.New("git dependency is required but not set")
	ErrConfigMissing    = errors.New("config dependency is required but not set")
	ErrLoggerMissing    = errors.New("logger dependency is required but not set")
	ErrEvaluatorMissing = errors.New("teardown evaluator dependency is required but not set")
	ErrEditorMissing    = errors.New("editor dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS        fs.FS
	Git       git.Git
	Config    config.Manager
	Logger    logger.Logger
	Evaluator teardown.Evaluator
	Editor    editor.Launcher
}

// New creates a new Dependencies instance with defaults for the stateless dependencies.
// Config and Evaluator depend on the user configuration and are set via With* methods.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(log),
		Logger: log,
		Editor: editor.NewLauncher(editor.Params{Logger: log}),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithEvaluator sets the teardown evaluator and returns the instance for chaining.
func (d *Dependencies) WithEvaluator(evaluator teardown.Evaluator) *Dependencies {
	d.Evaluator = evaluator
	return d
}

// WithEditor sets the editor launcher and returns the instance for chaining.
func (d *Dependencies) WithEditor(launcher editor.Launcher) *Dependencies {
	d.Editor = launcher
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Evaluator, ErrEvaluatorMissing},
		{d.Editor, ErrEditorMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
