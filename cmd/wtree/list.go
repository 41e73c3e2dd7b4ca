package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/wtree/internal/config"
	"github.com/raphi011/wtree/internal/format"
	"github.com/raphi011/wtree/internal/git"
	"github.com/raphi011/wtree/internal/log"
	"github.com/raphi011/wtree/internal/output"
	"github.com/raphi011/wtree/internal/ui/styles"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List worktrees",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List all worktrees git knows about for this repository, the main
checkout included, in git's order. Outside a repository the list is empty.

Each line shows a marker (* for the worktree you are in), the name, the
branch and the path relative to the repository root:

  * repo -> main (.)
    feature-x -> feature-x (.worktrees/feature-x)`,
		Example: `  wtree list          # styled list
  wtree ls --json     # machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			var wts []git.Worktree
			m, err := newManager(ctx)
			if err != nil {
				log.FromContext(ctx).Debug("no repository to list", "error", err)
			} else {
				wts = m.List(ctx)
			}

			if jsonOutput {
				return out.JSON(format.Records(wts))
			}

			if len(wts) == 0 {
				out.Println("No worktrees found")
				return nil
			}

			w := styles.Writer(out.Writer(), cfg.Color)
			for _, line := range format.Lines(wts, m.RepoRoot) {
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
