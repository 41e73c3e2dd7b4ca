// Package cmd provides helpers for executing external commands.
//
// [RunContext] and [OutputContext] wrap [os/exec.CommandContext], take the
// working directory as a parameter, and put the command's stderr into the
// returned error so git failures read naturally:
//
//	if err := cmd.RunContext(ctx, repoRoot, "git", "worktree", "prune"); err != nil {
//	    return fmt.Errorf("prune: %w", err)
//	}
//
// [Interactive] hands the terminal to a child process (the subshell started
// by "wtree switch") and reports its exit code.
//
// Every command is echoed through the context logger when --verbose is set.
package cmd
