//go:build unit

package workon

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/lerenn/workon/pkg/teardown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func blocked(check string) teardown.Verdict {
	return teardown.Verdict{Blocked: true, Reasons: []teardown.Reason{{Check: check, Output: "abc1234 (main) WIP\n"}}}
}

func TestDone_SingleProject(t *testing.T) {
	tests := []struct {
		name        string
		force       bool
		verdict     teardown.Verdict
		expectedErr error
	}{
		{name: "clean project is removed", verdict: teardown.Verdict{}},
		{name: "forced project is removed", force: true, verdict: teardown.Verdict{}},
		{name: "blocked project is kept", verdict: blocked(teardown.CheckUnpushedCommits), expectedErr: teardown.ErrTeardownBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := newTestWorkon(t)
			ctx := context.Background()

			m.fs.EXPECT().ReadDir(workDir).Return([]fs.DirEntry{dir("other"), dir("my_project")}, nil)
			m.evaluator.EXPECT().Evaluate(ctx, projectPath, tt.force).Return(tt.verdict, nil)
			if tt.expectedErr == nil {
				m.fs.EXPECT().RemoveAll(projectPath).Return(nil)
			}

			err := w.Done(ctx, DoneParams{Directory: workDir, Project: "my_project/", Force: tt.force})
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Contains(t, err.Error(), "abc1234 (main) WIP")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDone_SingleProjectNotFound(t *testing.T) {
	tests := []struct {
		name    string
		entries []fs.DirEntry
	}{
		{name: "missing", entries: []fs.DirEntry{dir("other")}},
		{name: "not a directory", entries: []fs.DirEntry{file("my_project")}},
		{name: "symlink", entries: []fs.DirEntry{symlink("my_project")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := newTestWorkon(t)

			m.fs.EXPECT().ReadDir(workDir).Return(tt.entries, nil)

			err := w.Done(context.Background(), DoneParams{Directory: workDir, Project: "my_project"})
			require.ErrorIs(t, err, ErrProjectNotFound)
			assert.Contains(t, err.Error(), `"my_project"`)
		})
	}
}

func TestDone_WorkingDirectoryAccess(t *testing.T) {
	w, m := newTestWorkon(t)

	m.fs.EXPECT().ReadDir(workDir).Return(nil, fs.ErrPermission)

	err := w.Done(context.Background(), DoneParams{Directory: workDir})
	assert.ErrorIs(t, err, ErrWorkingDirectoryAccess)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestDone_AllProjectsContinuesPastFailures(t *testing.T) {
	w, m := newTestWorkon(t)
	ctx := context.Background()

	m.fs.EXPECT().ReadDir(workDir).Return([]fs.DirEntry{
		dir("p1"), dir("p2"), dir("p3"), dir("p4"),
	}, nil)
	gomock.InOrder(
		m.evaluator.EXPECT().Evaluate(ctx, workDir+"/p1", false).Return(teardown.Verdict{}, nil),
		m.fs.EXPECT().RemoveAll(workDir+"/p1").Return(nil),
		m.evaluator.EXPECT().Evaluate(ctx, workDir+"/p2", false).Return(blocked(teardown.CheckStash), nil),
		m.evaluator.EXPECT().Evaluate(ctx, workDir+"/p3", false).Return(teardown.Verdict{}, nil),
		m.fs.EXPECT().RemoveAll(workDir+"/p3").Return(nil),
		m.evaluator.EXPECT().Evaluate(ctx, workDir+"/p4", false).Return(blocked(teardown.CheckUnstagedChanges), nil),
	)

	err := w.Done(ctx, DoneParams{Directory: workDir})
	require.ErrorIs(t, err, ErrSomeProjectsNotFinished)
	assert.ErrorIs(t, err, teardown.ErrTeardownBlocked)
	assert.Contains(t, err.Error(), `"p2"`)
	assert.Contains(t, err.Error(), `"p4"`)
}

func TestDone_AllProjectsSweepsStrayEntries(t *testing.T) {
	w, m := newTestWorkon(t)
	ctx := context.Background()

	m.fs.EXPECT().ReadDir(workDir).Return([]fs.DirEntry{
		file("notes.txt"), dir("p1"), symlink("link-to-dir"),
	}, nil)
	gomock.InOrder(
		m.evaluator.EXPECT().Evaluate(ctx, workDir+"/p1", true).Return(teardown.Verdict{}, nil),
		m.fs.EXPECT().RemoveAll(workDir+"/p1").Return(nil),
		m.fs.EXPECT().Remove(workDir+"/notes.txt").Return(nil),
		m.fs.EXPECT().Remove(workDir+"/link-to-dir").Return(nil),
	)

	require.NoError(t, w.Done(ctx, DoneParams{Directory: workDir, Force: true}))
}

func TestDone_AllProjectsSweepFailure(t *testing.T) {
	w, m := newTestWorkon(t)

	m.fs.EXPECT().ReadDir(workDir).Return([]fs.DirEntry{file("locked")}, nil)
	m.fs.EXPECT().Remove(workDir+"/locked").Return(fs.ErrPermission)

	err := w.Done(context.Background(), DoneParams{Directory: workDir})
	require.ErrorIs(t, err, ErrSomeProjectsNotFinished)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestDone_EmptyDirectoryIsNoop(t *testing.T) {
	w, m := newTestWorkon(t)

	m.fs.EXPECT().ReadDir(workDir).Return([]fs.DirEntry{}, nil)

	require.NoError(t, w.Done(context.Background(), DoneParams{Directory: workDir}))
}

func TestDone_EvaluationError(t *testing.T) {
	w, m := newTestWorkon(t)
	ctx := context.Background()

	m.fs.EXPECT().ReadDir(workDir).Return([]fs.DirEntry{dir("my_project")}, nil)
	m.evaluator.EXPECT().Evaluate(ctx, projectPath, false).Return(teardown.Verdict{}, errors.New("git exploded"))

	err := w.Done(ctx, DoneParams{Directory: workDir, Project: "my_project"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git exploded")
}

func TestDone_CancelledStopsBeforeNextProject(t *testing.T) {
	w, m := newTestWorkon(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.fs.EXPECT().ReadDir(workDir).Return([]fs.DirEntry{dir("p1"), dir("p2"), file("notes.txt")}, nil)
	m.evaluator.EXPECT().Evaluate(ctx, workDir+"/p1", false).Return(teardown.Verdict{}, nil)
	m.fs.EXPECT().RemoveAll(workDir+"/p1").DoAndReturn(func(string) error {
		cancel()
		return nil
	})

	err := w.Done(ctx, DoneParams{Directory: workDir})
	assert.ErrorIs(t, err, context.Canceled)
}
