// Package git wraps the git CLI for worktree management.
//
// Operations call git through [os/exec] with "git -C <dir>" instead of
// changing the process working directory, so nothing here has to restore
// a previous directory on the way out.
//
// # Discovery
//
//   - [ParsePorcelain]: lazy parser for "git worktree list --porcelain"
//   - [ListWorktrees]: runs the listing and collects the parsed records
//   - [WorktreeName]: name derivation from a worktree path
//
// # Lifecycle primitives
//
//   - [AddWorktree], [RemoveWorktree], [MoveWorktree], [PruneWorktrees]
//   - [RenameCurrentBranch], [RenameBranch], [GetCurrentBranch], [BranchExists]
//
// # Repository discovery
//
//   - [GetRepoRoot]: main repository root, also from inside a linked worktree
//     (a submodule is its own repository, a bare repo resolves to its git dir)
//
// Non-zero git exits are returned as [*CommandError] with git's stderr.
package git
