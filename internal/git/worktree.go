package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/wtree/internal/log"
)

// ListWorktrees returns the worktrees git knows about for the repository
// at repoDir. IsCurrent is computed against cwd.
// A failing git call is reported as "no worktrees", not as an error.
func ListWorktrees(ctx context.Context, repoDir, cwd string) []Worktree {
	output, err := outputGit(ctx, repoDir, "worktree", "list", "--porcelain")
	if err != nil {
		log.FromContext(ctx).Debug("worktree list failed", "dir", repoDir, "error", err)
		return nil
	}
	return CollectWorktrees(ParsePorcelain(output, cwd))
}

// AddWorktree creates a worktree at path on a new branch.
func AddWorktree(ctx context.Context, repoDir, path, branch string) error {
	return runGit(ctx, repoDir, "worktree", "add", "-b", branch, path)
}

// RemoveWorktree removes the worktree at path. The branch is left alone.
func RemoveWorktree(ctx context.Context, repoDir, path string, force bool) error {
	args := []string{"worktree", "remove", path}
	if force {
		args = append(args, "--force")
	}
	return runGit(ctx, repoDir, args...)
}

// MoveWorktree moves a worktree directory and updates git's record of it.
// The checked-out branch keeps its name.
func MoveWorktree(ctx context.Context, repoDir, oldPath, newPath string) error {
	return runGit(ctx, repoDir, "worktree", "move", oldPath, newPath)
}

// RenameCurrentBranch renames whatever branch is checked out in worktreeDir.
func RenameCurrentBranch(ctx context.Context, worktreeDir, newName string) error {
	return runGit(ctx, worktreeDir, "branch", "-m", newName)
}

// RenameBranch renames oldName to newName from anywhere in the repository.
func RenameBranch(ctx context.Context, repoDir, oldName, newName string) error {
	return runGit(ctx, repoDir, "branch", "-m", oldName, newName)
}

// PruneWorktrees drops registry entries whose directories no longer exist.
func PruneWorktrees(ctx context.Context, repoDir string) error {
	return runGit(ctx, repoDir, "worktree", "prune")
}

// GetCurrentBranch returns the branch checked out in dir,
// or DetachedBranch for a detached HEAD.
func GetCurrentBranch(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return DetachedBranch, nil
	}
	return branch, nil
}

// BranchExists checks if a local branch exists
func BranchExists(ctx context.Context, repoDir, branch string) bool {
	return runGit(ctx, repoDir, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// GetRepoRoot returns the main repository root for dir. From inside a
// linked worktree this is the repository the worktree belongs to, not the
// worktree itself. A submodule is its own repository. For a bare
// repository the root is the git directory.
func GetRepoRoot(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--path-format=absolute",
		"--show-toplevel", "--git-common-dir", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) != 3 {
		return "", fmt.Errorf("unexpected rev-parse output: %q", output)
	}
	toplevel := strings.TrimSpace(lines[0])
	commonDir := filepath.Clean(strings.TrimSpace(lines[1]))
	gitDir := filepath.Clean(strings.TrimSpace(lines[2]))

	if commonDir == gitDir {
		return toplevel, nil
	}
	return mainRepoFromCommonDir(ctx, commonDir)
}

// mainRepoFromCommonDir maps the shared git directory of a linked worktree
// to its main repository.
func mainRepoFromCommonDir(ctx context.Context, commonDir string) (string, error) {
	if filepath.Base(commonDir) == ".git" {
		return filepath.Dir(commonDir), nil
	}

	// Submodule git dirs live under .git/modules and point back at their
	// checkout through core.worktree.
	output, err := outputGit(ctx, commonDir, "config", "--get", "core.worktree")
	if err != nil {
		return commonDir, nil
	}
	worktree := strings.TrimSpace(string(output))
	if worktree == "" {
		return commonDir, nil
	}
	if !filepath.IsAbs(worktree) {
		worktree = filepath.Join(commonDir, worktree)
	}
	return filepath.Clean(worktree), nil
}
