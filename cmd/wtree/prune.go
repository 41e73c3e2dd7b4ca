package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/output"
)

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prune",
		Short:   "Forget worktrees whose directories were deleted",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Run "git worktree prune" for the repository.

Use after deleting a worktree directory by hand, or when rename reports
that a directory exists but git has no record of it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			before := len(m.List(ctx))
			if err := m.Prune(ctx); err != nil {
				return err
			}
			pruned := before - len(m.List(ctx))

			switch pruned {
			case 0:
				out.Println("Nothing to prune")
			case 1:
				out.Println("Pruned 1 stale worktree entry")
			default:
				out.Printf("Pruned %d stale worktree entries\n", pruned)
			}
			return nil
		},
	}

	return cmd
}
