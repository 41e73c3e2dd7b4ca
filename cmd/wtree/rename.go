package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/output"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rename <old> <new>",
		Aliases: []string{"mv"},
		Short:   "Rename a worktree and its branch",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(2),
		Long: `Move the worktree <old> to <new> and rename its branch to <new>.

This runs two git commands: "git worktree move" and then "git branch -m"
inside the moved worktree. If the branch rename fails (for example because
a branch called <new> already exists) the directory stays at its new
location on the old branch, and the error explains how to finish by hand.`,
		Example:           `  wtree rename feature-x feature-y`,
		ValidArgsFunction: completeFirstWorktreeName,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			oldName, newName := args[0], args[1]
			if err := m.Rename(ctx, oldName, newName); err != nil {
				return err
			}

			out.Printf("Renamed worktree %s -> %s\n", oldName, newName)
			return nil
		},
	}

	return cmd
}
