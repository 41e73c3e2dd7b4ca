package worktree

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateName checks that name can be used both as a single directory
// under the managed root and as a branch name argument.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &NameError{Kind: ErrInvalidName, Name: `""`}
	case name == "." || name == "..":
		return &NameError{Kind: ErrInvalidName, Name: name}
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %s (must not contain path separators)", ErrInvalidName, name)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w: %s (must not start with '-')", ErrInvalidName, name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q (leading or trailing whitespace)", ErrInvalidName, name)
	}
	return nil
}

// ManagedRoot joins the repository root and the managed worktree directory.
func ManagedRoot(repoRoot, dir string) string {
	return filepath.Join(repoRoot, dir)
}

// DisplayPath renders path relative to repoRoot when it lies inside it,
// and unchanged otherwise.
//   - "/repo/.worktrees/x" → ".worktrees/x"
//   - "/repo"              → "."
//   - "/other/x"           → "/other/x"
func DisplayPath(repoRoot, path string) string {
	if repoRoot == "" {
		return path
	}
	rel, err := filepath.Rel(repoRoot, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
