package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/log"
)

func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switch [name]",
		Aliases: []string{"sw"},
		Short:   "Open a shell inside a worktree",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Start an interactive shell inside the worktree called <name>.

The shell inherits the terminal and environment, with the worktree name
exported in $WTREE_WORKTREE (see env_var in the config). Exit the shell
to return; wtree exits with the shell's status.

Without a name on a terminal, pick the worktree from a list.`,
		Example: `  wtree switch feature-x
  wtree sw                  # pick interactively`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			name, _, err := nameArg(ctx, m, args, "Switch to worktree")
			if err != nil {
				return err
			}

			l.Printf("Entering worktree %s (exit the shell to return)\n", name)
			code, err := m.Switch(ctx, name)
			if err != nil {
				return err
			}
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	return cmd
}
