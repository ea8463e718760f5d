//go:build unit

package workon

import (
	"io/fs"
	"testing"

	configmocks "github.com/lerenn/workon/pkg/config/mocks"
	"github.com/lerenn/workon/pkg/dependencies"
	editormocks "github.com/lerenn/workon/pkg/editor/mocks"
	fsmocks "github.com/lerenn/workon/pkg/fs/mocks"
	gitmocks "github.com/lerenn/workon/pkg/git/mocks"
	"github.com/lerenn/workon/pkg/logger"
	teardownmocks "github.com/lerenn/workon/pkg/teardown/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const workDir = "/work"

// mocks groups the mocked dependencies of a Workon under test.
type mocks struct {
	fs        *fsmocks.MockFS
	git       *gitmocks.MockGit
	config    *configmocks.MockManager
	evaluator *teardownmocks.MockEvaluator
	editor    *editormocks.MockLauncher
}

func newTestWorkon(t *testing.T) (Workon, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mocks{
		fs:        fsmocks.NewMockFS(ctrl),
		git:       gitmocks.NewMockGit(ctrl),
		config:    configmocks.NewMockManager(ctrl),
		evaluator: teardownmocks.NewMockEvaluator(ctrl),
		editor:    editormocks.NewMockLauncher(ctrl),
	}

	deps := dependencies.New().
		WithFS(m.fs).
		WithGit(m.git).
		WithConfig(m.config).
		WithLogger(logger.NewNoopLogger()).
		WithEvaluator(m.evaluator).
		WithEditor(m.editor)

	w, err := NewWorkon(NewWorkonParams{Dependencies: deps})
	require.NoError(t, err)
	return w, m
}

// dirEntry is a directory listing entry.
type dirEntry struct {
	name string
	mode fs.FileMode
}

func dir(name string) fs.DirEntry     { return dirEntry{name: name, mode: fs.ModeDir} }
func file(name string) fs.DirEntry    { return dirEntry{name: name} }
func symlink(name string) fs.DirEntry { return dirEntry{name: name, mode: fs.ModeSymlink} }

func (e dirEntry) Name() string               { return e.name }
func (e dirEntry) IsDir() bool                { return e.mode.IsDir() }
func (e dirEntry) Type() fs.FileMode          { return e.mode.Type() }
func (e dirEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrInvalid }
