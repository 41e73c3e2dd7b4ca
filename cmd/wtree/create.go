package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/log"
	"github.com/raphi011/wtree/internal/output"
	"github.com/raphi011/wtree/internal/ui/prompt"
	"github.com/raphi011/wtree/internal/worktree"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"new"},
		Short:   "Create a worktree on a new branch",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create a worktree called <name> on a new branch called <name>.

The worktree is placed in the managed directory (.worktrees by default)
of the main repository, which is created on first use. The new branch
starts at the current HEAD. Run without a name on a terminal to be
prompted for one.`,
		Example: `  wtree create feature-x   # .worktrees/feature-x on branch feature-x
  wtree new fix-login      # same, using the alias`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				if !prompt.IsInteractive() {
					return errNoName
				}
				res, err := prompt.TextInput("Worktree name", "feature-x", worktree.ValidateName)
				if err != nil {
					return err
				}
				if res.Cancelled {
					return &exitError{code: 1}
				}
				name = res.Value
			}

			path, err := m.Create(ctx, name)
			if err != nil {
				return err
			}

			log.FromContext(ctx).Debug("created worktree", "name", name, "path", path)
			out.Printf("Created worktree %s at %s\n", name, worktree.DisplayPath(m.RepoRoot, path))
			return nil
		},
	}

	return cmd
}
