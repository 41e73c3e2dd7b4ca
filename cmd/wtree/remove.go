package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/output"
	"github.com/raphi011/wtree/internal/ui/prompt"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a worktree, keeping its branch",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove the worktree called <name>.

The directory and git's record of it are deleted; the branch stays so no
commits are lost. git refuses to remove a worktree with uncommitted or
untracked changes unless --force is given.

Without a name on a terminal, pick the worktree from a list and confirm.`,
		Example: `  wtree remove feature-x
  wtree rm -f scratch       # discard local changes`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			name, picked, err := nameArg(ctx, m, args, "Remove worktree")
			if err != nil {
				return err
			}

			if picked {
				res, err := prompt.Confirm(fmt.Sprintf("Remove worktree %s?", name), "The branch is kept.")
				if err != nil {
					return err
				}
				if !res.Confirmed {
					return &exitError{code: 1}
				}
			}

			branch := name
			if wt, ok := m.Lookup(ctx, name); ok {
				branch = wt.ShortBranch()
			}

			if err := m.Remove(ctx, name, force); err != nil {
				return err
			}

			out.Printf("Removed worktree %s (branch %s kept)\n", name, branch)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted or untracked changes")

	return cmd
}
