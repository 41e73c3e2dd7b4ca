// Package format renders worktree records for the list command.
//
// # Line format
//
// Each worktree is one line:
//
//	<marker> <name> -> <branch> (<path>)
//
// The marker is "*" for the worktree containing the working directory and
// a space otherwise. Branches are shown without the refs/heads/ prefix and
// paths relative to the repository root when they lie inside it:
//
//	* main -> main (.)
//	  feature-x -> feature-x (.worktrees/feature-x)
//
// Lines carry lipgloss styling; write them through styles.Writer to strip or
// downsample colors for the output.
//
// # JSON
//
// [Records] converts worktrees to the shape "wtree list --json" prints.
package format
