package git

import (
	"context"

	"github.com/raphi011/wtree/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command in dir.
func runGit(ctx context.Context, dir string, args ...string) error {
	if err := cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...); err != nil {
		return &CommandError{Args: args, Err: err}
	}
	return nil
}

// outputGit executes a git command in dir and returns stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	if err != nil {
		return nil, &CommandError{Args: args, Err: err}
	}
	return out, nil
}
