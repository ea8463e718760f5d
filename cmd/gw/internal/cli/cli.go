// Package cli provides the configuration and wiring shared by the gw commands.
package cli

import (
	"errors"

	"github.com/lerenn/workon/pkg/config"
	"github.com/lerenn/workon/pkg/dependencies"
	"github.com/lerenn/workon/pkg/editor"
	"github.com/lerenn/workon/pkg/fs"
	"github.com/lerenn/workon/pkg/git"
	"github.com/lerenn/workon/pkg/logger"
	"github.com/lerenn/workon/pkg/teardown"
	"github.com/lerenn/workon/pkg/workon"
)

var (
	// Verbose is the number of -v flags.
	Verbose int
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// log is the logger of the running command, replaced once the configuration is loaded.
var log logger.Logger

// Session holds what a command needs once the configuration is loaded.
type Session struct {
	Config config.Config
	FS     fs.FS
	Workon workon.Workon
}

// Logger returns the logger of the running command.
func Logger() logger.Logger {
	if log == nil {
		log = newConsoleLogger("")
	}
	return log
}

// SessionOpts contains optional parameters for NewSession.
type SessionOpts struct {
	// TolerateInvalidConfig replaces an invalid configuration by an empty one instead of failing.
	TolerateInvalidConfig bool
}

// NewSession loads the configuration and wires the lifecycle controller.
func NewSession(opts ...SessionOpts) (*Session, error) {
	var opt SessionOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	fsys := fs.NewFS()
	log = newConsoleLogger("")

	manager, err := NewConfigManager(fsys, log)
	if err != nil {
		return nil, err
	}

	cfg, err := manager.GetConfig()
	if err != nil {
		if !opt.TolerateInvalidConfig || !errors.Is(err, config.ErrInvalidConfig) {
			return nil, err
		}
		log.Warnf("%v. Skipping", err)
		cfg = config.Config{}
	}

	if cfg.LogFile != "" {
		logFile, err := fsys.ExpandPath(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		log = newConsoleLogger(logFile)
	}

	g := git.NewGit(log)
	w, err := workon.NewWorkon(workon.NewWorkonParams{
		Dependencies: dependencies.New().
			WithFS(fsys).
			WithLogger(log).
			WithGit(g).
			WithConfig(manager).
			WithEvaluator(teardown.NewEvaluator(teardown.Params{Git: g, Logger: log, Config: cfg.Teardown})).
			WithEditor(editor.NewLauncher(editor.Params{Logger: log})),
	})
	if err != nil {
		return nil, err
	}

	return &Session{Config: cfg, FS: fsys, Workon: w}, nil
}

// NewConfigManager creates a Manager for the -c path, or the default path when unset.
func NewConfigManager(fsys fs.FS, log logger.Logger) (config.Manager, error) {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigPath(fsys)
	}

	path, err := fsys.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	return config.NewManager(config.NewManagerParams{ConfigPath: path, FS: fsys, Logger: log}), nil
}

// newConsoleLogger builds the stderr logger, falling back to the console alone
// when the log file cannot be opened.
func newConsoleLogger(logFile string) logger.Logger {
	l, err := logger.NewLogger(logger.Params{Verbose: Verbose, LogFile: logFile})
	if err == nil {
		return l
	}

	l, _ = logger.NewLogger(logger.Params{Verbose: Verbose})
	l.Warnf("Failed to open log file %q: %v. Skipping", logFile, err)
	return l
}
