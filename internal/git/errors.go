package git

import (
	"errors"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// CommandError is returned when a git invocation exits non-zero.
// Err carries git's stderr when it printed any.
type CommandError struct {
	Args []string
	Err  error
}

func (e *CommandError) Error() string {
	return "git " + strings.Join(e.Args, " ") + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
