//go:build integration

package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/wtree/internal/worktree"
)

// TestCreate_ListShowsWorktree tests the basic create flow.
//
// Scenario: User runs `wtree create feature-x` then `wtree list`
// Expected: worktree at .worktrees/feature-x on branch feature-x, listed after main
func TestCreate_ListShowsWorktree(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	ctx, out := testContext(t, repoPath, nil)

	if err := execute(ctx, newCreateCmd(), "feature-x"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	want := "Created worktree feature-x at " + filepath.Join(".worktrees", "feature-x")
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	wtPath := filepath.Join(repoPath, ".worktrees", "feature-x")
	if got := currentBranch(t, wtPath); got != "feature-x" {
		t.Errorf("branch = %q, want feature-x", got)
	}

	lines := listLines(t, repoPath)
	wantLines := []string{
		"* myrepo -> main (.)",
		"  feature-x -> feature-x (.worktrees/feature-x)",
	}
	if !slices.Equal(lines, wantLines) {
		t.Errorf("list =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(wantLines, "\n"))
	}
}

// TestCreate_Twice tests that a second create with the same name fails.
//
// Scenario: User runs `wtree create feature-x` twice
// Expected: second run fails with AlreadyExists, the first worktree is untouched
func TestCreate_Twice(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	ctx, _ := testContext(t, repoPath, nil)

	if err := execute(ctx, newCreateCmd(), "feature-x"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	err := execute(ctx, newCreateCmd(), "feature-x")
	if !errors.Is(err, worktree.ErrAlreadyExists) {
		t.Fatalf("second create error = %v, want ErrAlreadyExists", err)
	}

	if len(listLines(t, repoPath)) != 2 {
		t.Error("second create changed the worktree list")
	}
}

// TestCreate_FromLinkedWorktree tests that names resolve against the main
// repository when run from inside a worktree.
//
// Scenario: User is in .worktrees/a and runs `wtree create b`
// Expected: b is created next to a, not nested inside it
func TestCreate_FromLinkedWorktree(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	ctx, _ := testContext(t, repoPath, nil)
	if err := execute(ctx, newCreateCmd(), "a"); err != nil {
		t.Fatal(err)
	}

	inA := filepath.Join(repoPath, ".worktrees", "a")
	ctx, _ = testContext(t, inA, nil)
	if err := execute(ctx, newCreateCmd(), "b"); err != nil {
		t.Fatalf("create from worktree failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(repoPath, ".worktrees", "b")); err != nil {
		t.Errorf("b not created under main repo: %v", err)
	}

	lines := listLines(t, inA)
	if !slices.Contains(lines, "* a -> a (.worktrees/a)") {
		t.Errorf("list from a should mark a as current:\n%s", strings.Join(lines, "\n"))
	}
}

// TestCreate_InvalidName tests that names with separators are rejected.
func TestCreate_InvalidName(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	ctx, _ := testContext(t, repoPath, nil)

	err := execute(ctx, newCreateCmd(), "feature/x")
	if !errors.Is(err, worktree.ErrInvalidName) {
		t.Fatalf("create error = %v, want ErrInvalidName", err)
	}
}

// TestCreate_CustomWorktreeDir tests the worktree_dir setting.
func TestCreate_CustomWorktreeDir(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	cfg := defaultTestConfig()
	cfg.WorktreeDir = "trees"
	ctx, _ := testContext(t, repoPath, cfg)

	if err := execute(ctx, newCreateCmd(), "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(repoPath, "trees", "x")); err != nil {
		t.Errorf("worktree not in custom dir: %v", err)
	}
}
