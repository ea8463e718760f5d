//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/workon/pkg/config"
	"github.com/lerenn/workon/pkg/dependencies"
	"github.com/lerenn/workon/pkg/fs"
	"github.com/lerenn/workon/pkg/git"
	"github.com/lerenn/workon/pkg/logger"
	"github.com/lerenn/workon/pkg/teardown"
	"github.com/lerenn/workon/pkg/workon"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	WorkDir    string
	RemotesDir string
}

// setupTestEnvironment creates a working directory, a directory of bare remotes
// and a configuration file pointing to them.
func setupTestEnvironment(t *testing.T, teardownConfig config.TeardownConfig) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	setup := &TestSetup{
		TempDir:    tempDir,
		ConfigPath: filepath.Join(tempDir, "git_workon", "config.yaml"),
		WorkDir:    filepath.Join(tempDir, "work"),
		RemotesDir: filepath.Join(tempDir, "remotes"),
	}
	require.NoError(t, os.MkdirAll(setup.WorkDir, 0755))
	require.NoError(t, os.MkdirAll(setup.RemotesDir, 0755))
	require.NoError(t, os.MkdirAll(filepath.Dir(setup.ConfigPath), 0755))

	configData, err := yaml.Marshal(config.Config{
		Dir:      setup.WorkDir,
		Source:   []string{setup.RemotesDir},
		Teardown: teardownConfig,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(setup.ConfigPath, configData, 0644))

	return setup
}

// newWorkon wires a Workon instance from the configuration file of the setup.
func newWorkon(t *testing.T, setup *TestSetup) (workon.Workon, config.Config) {
	t.Helper()

	log := logger.NewNoopLogger()
	fsys := fs.NewFS()
	manager := config.NewManager(config.NewManagerParams{ConfigPath: setup.ConfigPath, FS: fsys, Logger: log})
	cfg, err := manager.GetConfig()
	require.NoError(t, err)

	g := git.NewGit(log)
	w, err := workon.NewWorkon(workon.NewWorkonParams{
		Dependencies: dependencies.New().
			WithFS(fsys).
			WithLogger(log).
			WithGit(g).
			WithConfig(manager).
			WithEvaluator(teardown.NewEvaluator(teardown.Params{Git: g, Logger: log, Config: cfg.Teardown})),
	})
	require.NoError(t, err)
	return w, cfg
}

// startProject creates a remote for the project and starts it without opening it.
func startProject(t *testing.T, setup *TestSetup, name string) string {
	t.Helper()

	git.SetupBareRemote(t, setup.RemotesDir, name)

	w, cfg := newWorkon(t, setup)
	require.NoError(t, w.Start(t.Context(), workon.StartParams{
		Directory: cfg.Dir,
		Project:   name,
		Sources:   cfg.Source,
		NoOpen:    true,
	}))

	return filepath.Join(setup.WorkDir, name)
}

// done runs Done on the working directory of the setup.
func done(t *testing.T, setup *TestSetup, project string, force bool) error {
	t.Helper()

	w, cfg := newWorkon(t, setup)
	return w.Done(t.Context(), workon.DoneParams{Directory: cfg.Dir, Project: project, Force: force})
}
