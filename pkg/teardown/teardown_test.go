//go:build unit

package teardown

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lerenn/workon/pkg/config"
	"github.com/lerenn/workon/pkg/git"
	gitmocks "github.com/lerenn/workon/pkg/git/mocks"
	"github.com/lerenn/workon/pkg/logger"
	loggermocks "github.com/lerenn/workon/pkg/logger/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const projectPath = "/work/my_project"

func TestEvaluate_ForceRunsNoProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectation: any probe call fails the test.
	mockGit := gitmocks.NewMockGit(ctrl)
	evaluator := NewEvaluator(Params{Git: mockGit, Logger: logger.NewNoopLogger()})

	verdict, err := evaluator.Evaluate(context.Background(), projectPath, true)
	require.NoError(t, err)
	assert.True(t, verdict.Clean())
	assert.Empty(t, verdict.Reasons)
}

func TestEvaluate_NotARepositoryIsClean(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().IsRepository(projectPath).Return(false, nil)

	evaluator := NewEvaluator(Params{Git: mockGit})

	verdict, err := evaluator.Evaluate(context.Background(), projectPath, false)
	require.NoError(t, err)
	assert.True(t, verdict.Clean())
}

func TestEvaluate_StopsAtFirstFailingCheck(t *testing.T) {
	tests := []struct {
		name          string
		stash         string
		commits       string
		changes       string
		tags          string
		expectedCheck string
	}{
		{
			name:          "stash",
			stash:         "stash@{0}: WIP on main: abc123 msg\n",
			expectedCheck: CheckStash,
		},
		{
			name:          "unpushed commits",
			commits:       "abc1234 (HEAD -> feature) Add feature\n",
			expectedCheck: CheckUnpushedCommits,
		},
		{
			name:          "unstaged changes",
			changes:       " M README.md\n",
			expectedCheck: CheckUnstagedChanges,
		},
		{
			name:          "unpushed tags",
			tags:          " * [new tag]         v1.0.0 -> v1.0.0\n",
			expectedCheck: CheckUnpushedTags,
		},
		{
			name: "clean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			mockGit := gitmocks.NewMockGit(ctrl)
			mockGit.EXPECT().IsRepository(projectPath).Return(true, nil)

			// Each probe is reached only while every previous one is empty.
			calls := []any{
				mockGit.EXPECT().StashList(ctx, projectPath).Return(tt.stash, nil),
			}
			if tt.stash == "" {
				calls = append(calls, mockGit.EXPECT().UnpushedBranches(ctx, projectPath).Return(tt.commits, nil))
			}
			if tt.stash == "" && tt.commits == "" {
				calls = append(calls, mockGit.EXPECT().UnstagedChanges(ctx, projectPath).Return(tt.changes, nil))
			}
			if tt.stash == "" && tt.commits == "" && tt.changes == "" {
				calls = append(calls, mockGit.EXPECT().UnpushedTags(ctx, projectPath).Return(tt.tags, nil))
			}
			gomock.InOrder(calls...)

			evaluator := NewEvaluator(Params{Git: mockGit})

			verdict, err := evaluator.Evaluate(ctx, projectPath, false)
			require.NoError(t, err)

			if tt.expectedCheck == "" {
				assert.True(t, verdict.Clean())
				assert.NoError(t, verdict.Error("my_project"))
				return
			}
			assert.True(t, verdict.Blocked)
			require.Len(t, verdict.Reasons, 1)
			assert.Equal(t, tt.expectedCheck, verdict.Reasons[0].Check)
			assert.NotEmpty(t, verdict.Reasons[0].Output)
		})
	}
}

func TestEvaluate_ReportAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().IsRepository(projectPath).Return(true, nil)
	gomock.InOrder(
		mockGit.EXPECT().StashList(ctx, projectPath).Return("stash@{0}: WIP\n", nil),
		mockGit.EXPECT().UnpushedBranches(ctx, projectPath).Return("", nil),
		mockGit.EXPECT().UnstagedChanges(ctx, projectPath).Return("?? new.txt\n", nil),
		mockGit.EXPECT().UnpushedTags(ctx, projectPath).Return("", nil),
	)

	evaluator := NewEvaluator(Params{
		Git:    mockGit,
		Config: config.TeardownConfig{ReportAll: true},
	})

	verdict, err := evaluator.Evaluate(ctx, projectPath, false)
	require.NoError(t, err)
	assert.True(t, verdict.Blocked)
	assert.Equal(t, []Reason{
		{Check: CheckStash, Output: "stash@{0}: WIP\n"},
		{Check: CheckUnstagedChanges, Output: "?? new.txt\n"},
	}, verdict.Reasons)
}

func TestEvaluate_TagCheckFailure(t *testing.T) {
	failure := "Failed to check unpushed tags: fatal: No configured push destination.\n"
	disabled := false

	tests := []struct {
		name          string
		teardown      config.TeardownConfig
		expectBlocked bool
	}{
		{name: "blocks by default", teardown: config.TeardownConfig{}, expectBlocked: true},
		{name: "ignored when configured", teardown: config.TeardownConfig{TagCheckFailureBlocks: &disabled}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			mockGit := gitmocks.NewMockGit(ctrl)
			mockLogger := loggermocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

			mockGit.EXPECT().IsRepository(projectPath).Return(true, nil)
			mockGit.EXPECT().StashList(ctx, projectPath).Return("", nil)
			mockGit.EXPECT().UnpushedBranches(ctx, projectPath).Return("", nil)
			mockGit.EXPECT().UnstagedChanges(ctx, projectPath).Return("", nil)
			mockGit.EXPECT().UnpushedTags(ctx, projectPath).
				Return(failure, fmt.Errorf("%w under %q: no remote", git.ErrTagCheckFailed, projectPath))
			if !tt.expectBlocked {
				mockLogger.EXPECT().Warnf("%v. Ignoring", gomock.Any())
			}

			evaluator := NewEvaluator(Params{Git: mockGit, Logger: mockLogger, Config: tt.teardown})

			verdict, err := evaluator.Evaluate(ctx, projectPath, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expectBlocked, verdict.Blocked)
			if tt.expectBlocked {
				assert.Equal(t, []Reason{{Check: CheckUnpushedTags, Output: failure, Failed: true}}, verdict.Reasons)
			}
		})
	}
}

func TestEvaluate_ProbeErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().IsRepository(projectPath).Return(true, nil)
	mockGit.EXPECT().StashList(ctx, projectPath).Return("", git.ErrGitNotAvailable)

	evaluator := NewEvaluator(Params{Git: mockGit})

	_, err := evaluator.Evaluate(ctx, projectPath, false)
	assert.ErrorIs(t, err, git.ErrGitNotAvailable)
}

func TestEvaluate_RepositoryOpenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().IsRepository(projectPath).Return(false, errors.New("permission denied"))

	evaluator := NewEvaluator(Params{Git: mockGit})

	_, err := evaluator.Evaluate(context.Background(), projectPath, false)
	assert.Error(t, err)
}

func TestEvaluate_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().IsRepository(projectPath).Return(true, nil)

	evaluator := NewEvaluator(Params{Git: mockGit})

	_, err := evaluator.Evaluate(ctx, projectPath, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerdict_Error(t *testing.T) {
	verdict := Verdict{
		Blocked: true,
		Reasons: []Reason{{Check: CheckUnpushedCommits, Output: "abc1234 (feature) WIP\n"}},
	}

	err := verdict.Error("my_project")
	require.ErrorIs(t, err, ErrTeardownBlocked)
	assert.Contains(t, err.Error(), `There are unpushed commits left for "my_project"`)
	assert.Contains(t, err.Error(), "abc1234 (feature) WIP")
	assert.Contains(t, err.Error(), `use "-f" flag`)
}

func TestVerdict_Error_FailedCheck(t *testing.T) {
	verdict := Verdict{
		Blocked: true,
		Reasons: []Reason{{
			Check:  CheckUnpushedTags,
			Output: "Failed to check unpushed tags: fatal: No configured push destination.\n",
			Failed: true,
		}},
	}

	err := verdict.Error("my_project")
	require.ErrorIs(t, err, ErrTeardownBlocked)
	assert.Contains(t, err.Error(), `Could not check unpushed tags for "my_project"`)
	assert.Contains(t, err.Error(), "No configured push destination")
	assert.NotContains(t, err.Error(), "left for")
}
