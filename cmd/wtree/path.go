package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/log"
	"github.com/raphi011/wtree/internal/output"
)

func newPathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "path [name]",
		Short:   "Print a worktree's path for shell scripting",
		GroupID: GroupUtility,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the absolute path of the worktree called <name>.

Use with command substitution to change directory without a subshell.
Without a name on a terminal, pick the worktree from a list; the list
is drawn on stderr so substitution still works.`,
		Example: `  cd "$(wtree path feature-x)"
  cd "$(wtree path)"             # pick interactively
  wtree path --copy feature-x    # also copy to clipboard`,
		ValidArgsFunction: completeWorktreeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			name, _, err := nameArg(ctx, m, args, "Worktree")
			if err != nil {
				return err
			}

			path, err := m.Resolve(ctx, name)
			if err != nil {
				return err
			}

			if copyToClipboard {
				l := log.FromContext(ctx)
				if err := clipboard.WriteAll(path); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			out.Println(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}
