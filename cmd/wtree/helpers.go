package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/wtree/internal/config"
	"github.com/raphi011/wtree/internal/git"
	"github.com/raphi011/wtree/internal/ui/prompt"
	"github.com/raphi011/wtree/internal/worktree"
)

type workDirKey struct{}

// withWorkDir records the directory wtree was started from.
func withWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// workDirFromContext returns the recorded start directory, falling back to
// the process working directory.
func workDirFromContext(ctx context.Context) (string, error) {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// newManager builds a lifecycle manager for the repository containing the
// working directory. From inside a linked worktree that is the main
// repository, so names resolve the same everywhere.
func newManager(ctx context.Context) (*worktree.Manager, error) {
	cfg := config.FromContext(ctx)

	workDir, err := workDirFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	if !git.IsInsideRepo(ctx, workDir) {
		return nil, fmt.Errorf("not inside a git repository: %s", workDir)
	}

	repoRoot, err := git.GetRepoRoot(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return worktree.NewManager(repoRoot, cfg.WorktreeDir, workDir, cfg.ShellCommand(), cfg.EnvVar), nil
}

// errNoName is returned when a name argument is missing and no prompt can
// be shown.
var errNoName = errors.New("worktree name required (no terminal for interactive selection)")

// pickWorktree asks the user to choose one of the managed worktrees.
// A cancelled picker ends the command with exit status 1 and no message.
func pickWorktree(ctx context.Context, m *worktree.Manager, title string) (string, error) {
	if !prompt.IsInteractive() {
		return "", errNoName
	}

	managed := m.Managed(ctx)
	if len(managed) == 0 {
		return "", fmt.Errorf("no worktrees in %s", worktree.DisplayPath(m.RepoRoot, m.Root()))
	}

	options := make([]prompt.Option, len(managed))
	for i, wt := range managed {
		options[i] = prompt.Option{Label: wt.Name, Description: wt.ShortBranch()}
	}

	res, err := prompt.Select(title, options)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", &exitError{code: 1}
	}
	return res.Value, nil
}

// nameArg returns args[0] or, without arguments, a picked worktree name.
func nameArg(ctx context.Context, m *worktree.Manager, args []string, title string) (name string, picked bool, err error) {
	if len(args) > 0 {
		return args[0], false, nil
	}
	name, err = pickWorktree(ctx, m, title)
	return name, err == nil, err
}
