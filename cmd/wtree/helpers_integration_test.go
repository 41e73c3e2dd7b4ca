//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/config"
	"github.com/raphi011/wtree/internal/log"
	"github.com/raphi011/wtree/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo on branch main with an initial commit
// in dir/name and returns its path.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	repoPath := filepath.Join(resolvePath(t, dir), name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init", "-b", "main")
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")

	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	return repoPath
}

// runGitCommand runs a command in dir and returns its combined output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// testContext returns a context rooted at workDir with quiet logging and
// stdout captured in the returned buffer.
func testContext(t *testing.T, workDir string, cfg *config.Config) (context.Context, *bytes.Buffer) {
	t.Helper()

	if cfg == nil {
		cfg = defaultTestConfig()
	}

	var out bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &out)
	ctx = config.WithConfig(ctx, cfg)
	ctx = withWorkDir(ctx, workDir)
	return ctx, &out
}

// execute runs cmd with args in ctx.
func execute(ctx context.Context, cmd *cobra.Command, args ...string) error {
	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

// listLines runs "wtree list" and returns its output lines.
func listLines(t *testing.T, workDir string) []string {
	t.Helper()

	ctx, out := testContext(t, workDir, nil)
	if err := execute(ctx, newListCmd()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

// currentBranch returns the branch checked out in dir.
func currentBranch(t *testing.T, dir string) string {
	t.Helper()
	return strings.TrimSpace(runGitCommand(t, dir, "git", "branch", "--show-current"))
}

// defaultTestConfig returns defaults with colors off.
func defaultTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Color = config.ColorNever
	return &cfg
}
