package worktree

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by lifecycle operations. Match with errors.Is.
var (
	ErrAlreadyExists         = errors.New("worktree already exists")
	ErrNotFound              = errors.New("worktree not found")
	ErrRegistryInconsistency = errors.New("worktree directory exists but git has no record of it")
	ErrExternalTool          = errors.New("git command failed")
	ErrInvalidName           = errors.New("invalid worktree name")
)

// NameError ties an error kind to the worktree name it concerns.
type NameError struct {
	Kind        error
	Name        string
	Suggestions []string // similar existing names, for ErrNotFound
}

func (e *NameError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *NameError) Unwrap() error {
	return e.Kind
}

// toolError marks err as a failed git invocation during op.
func toolError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrExternalTool, err)
}

// RenameIncompleteError reports a rename that moved the directory but could
// not rename the branch. The worktree now lives at Path with Branch still
// checked out; nothing is rolled back.
type RenameIncompleteError struct {
	Old    string // worktree name before the move
	New    string
	Branch string // branch still checked out at Path
	Path   string
	Err    error
}

func (e *RenameIncompleteError) Error() string {
	return fmt.Sprintf("worktree %s moved to %s but branch %q was not renamed to %q: %v\n"+
		"  finish manually: git -C %s branch -m %s",
		e.Old, e.Path, e.Branch, e.New, e.Err, e.Path, e.New)
}

func (e *RenameIncompleteError) Unwrap() []error {
	return []error{ErrExternalTool, e.Err}
}
