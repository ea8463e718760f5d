package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RunGit runs git with args in dir and fails the test on error.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed in %s: %v (output: %s)", args, dir, err, output)
	}
	return string(output)
}

// SetupBareRemote creates a bare repository holding one commit on its default branch
// and returns its path. The path can be used as a clone URL.
func SetupBareRemote(t *testing.T, parent, name string) string {
	t.Helper()

	seed := filepath.Join(t.TempDir(), "seed")
	if err := os.MkdirAll(seed, 0755); err != nil {
		t.Fatalf("Failed to create seed directory: %v", err)
	}
	RunGit(t, seed, "init")
	commitFile(t, seed, "README.md", "# "+name)

	bare := filepath.Join(parent, name+".git")
	RunGit(t, parent, "clone", "--bare", seed, bare)
	return bare
}

// SetupTestRepo clones a fresh bare remote and returns the path of the clone.
// The clone is clean: every branch is pushed, nothing is stashed or modified.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	remotes := t.TempDir()
	bare := SetupBareRemote(t, remotes, "project")

	clone := filepath.Join(t.TempDir(), "project")
	RunGit(t, "", "clone", bare, clone)
	return clone
}

// CommitFile writes a file in repo and commits it.
func CommitFile(t *testing.T, repo, name, content string) {
	t.Helper()
	commitFile(t, repo, name, content)
}

func commitFile(t *testing.T, repo, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repo, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	RunGit(t, repo, "add", name)
	RunGit(t, repo, "commit", "-m", "Add "+name)
}
