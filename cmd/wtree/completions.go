package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// completeWorktreeNames completes the names of managed worktrees, with the
// branch as description.
func completeWorktreeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	m, err := newManager(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, wt := range m.Managed(ctx) {
		if strings.HasPrefix(wt.Name, toComplete) {
			matches = append(matches, wt.Name+"\t"+wt.ShortBranch())
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeFirstWorktreeName completes only the first argument; the second
// argument of rename is a new name.
func completeFirstWorktreeName(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return completeWorktreeNames(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
