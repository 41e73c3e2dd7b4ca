package worktree

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raphi011/wtree/internal/cmd"
	"github.com/raphi011/wtree/internal/git"
	"github.com/raphi011/wtree/internal/log"
	"github.com/raphi011/wtree/internal/registry"
)

// Git is the set of git worktree primitives the lifecycle operations use.
// Each call is expected to succeed or fail as a whole.
type Git interface {
	AddWorktree(ctx context.Context, repoDir, path, branch string) error
	RemoveWorktree(ctx context.Context, repoDir, path string, force bool) error
	MoveWorktree(ctx context.Context, repoDir, oldPath, newPath string) error
	RenameCurrentBranch(ctx context.Context, worktreeDir, newName string) error
	PruneWorktrees(ctx context.Context, repoDir string) error
}

// CLIGit implements Git with the git command line.
type CLIGit struct{}

func (CLIGit) AddWorktree(ctx context.Context, repoDir, path, branch string) error {
	return git.AddWorktree(ctx, repoDir, path, branch)
}

func (CLIGit) RemoveWorktree(ctx context.Context, repoDir, path string, force bool) error {
	return git.RemoveWorktree(ctx, repoDir, path, force)
}

func (CLIGit) MoveWorktree(ctx context.Context, repoDir, oldPath, newPath string) error {
	return git.MoveWorktree(ctx, repoDir, oldPath, newPath)
}

func (CLIGit) RenameCurrentBranch(ctx context.Context, worktreeDir, newName string) error {
	return git.RenameCurrentBranch(ctx, worktreeDir, newName)
}

func (CLIGit) PruneWorktrees(ctx context.Context, repoDir string) error {
	return git.PruneWorktrees(ctx, repoDir)
}

// Spawner starts an interactive process in dir and waits for it.
type Spawner interface {
	Spawn(ctx context.Context, dir string, env []string) (int, error)
}

// ShellSpawner runs Shell attached to the terminal.
type ShellSpawner struct {
	Shell string
}

// Spawn starts the shell and returns its exit code.
func (s ShellSpawner) Spawn(ctx context.Context, dir string, env []string) (int, error) {
	return cmd.Interactive(ctx, dir, env, s.Shell)
}

// Manager runs lifecycle operations for the worktrees of one repository.
// It holds no worktree state; every operation checks the filesystem and
// asks git afresh.
type Manager struct {
	RepoRoot string // main repository root
	Dir      string // managed worktree directory, relative to RepoRoot
	EnvVar   string // set to the worktree name in spawned shells

	Git      Git
	Registry *registry.View
	Shell    Spawner
}

// NewManager wires a Manager to the git CLI and the given shell.
func NewManager(repoRoot, dir, cwd, shell, envVar string) *Manager {
	return &Manager{
		RepoRoot: repoRoot,
		Dir:      dir,
		EnvVar:   envVar,
		Git:      CLIGit{},
		Registry: registry.New(repoRoot, cwd),
		Shell:    ShellSpawner{Shell: shell},
	}
}

// Root returns the absolute managed root.
func (m *Manager) Root() string {
	return ManagedRoot(m.RepoRoot, m.Dir)
}

// PathFor returns where the worktree called name lives.
func (m *Manager) PathFor(name string) string {
	return filepath.Join(m.Root(), name)
}

// exists reports whether anything is present at path.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (m *Manager) notFound(ctx context.Context, name string) error {
	return &NameError{Kind: ErrNotFound, Name: name, Suggestions: m.managedSuggestions(ctx, name)}
}

// managedSuggestions proposes names of directories under the managed root.
func (m *Manager) managedSuggestions(ctx context.Context, name string) []string {
	entries, err := os.ReadDir(m.Root())
	if err != nil {
		log.FromContext(ctx).Debug("cannot read managed root", "dir", m.Root(), "error", err)
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return registry.SuggestFrom(name, names)
}

// Create adds a worktree called name on a new branch called name.
// It returns the absolute path of the new worktree.
func (m *Manager) Create(ctx context.Context, name string) (string, error) {
	l := log.FromContext(ctx)

	if err := ValidateName(name); err != nil {
		return "", err
	}

	if err := os.MkdirAll(m.Root(), 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", m.Root(), err)
	}

	path := m.PathFor(name)
	found, err := exists(path)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", path, err)
	}
	if found {
		return "", &NameError{Kind: ErrAlreadyExists, Name: name}
	}

	l.Debug("creating worktree", "name", name, "path", path)
	if err := m.Git.AddWorktree(ctx, m.RepoRoot, path, name); err != nil {
		return "", toolError("create worktree "+name, err)
	}
	return path, nil
}

// List returns git's current view of all worktrees, main checkout included.
func (m *Manager) List(ctx context.Context) []git.Worktree {
	return m.Registry.List(ctx)
}

// Managed returns the worktrees that live directly under the managed root,
// in git's order.
func (m *Manager) Managed(ctx context.Context) []git.Worktree {
	root := filepath.Clean(m.Root())
	var out []git.Worktree
	for _, wt := range m.List(ctx) {
		if filepath.Dir(filepath.Clean(wt.Path)) == root {
			out = append(out, wt)
		}
	}
	return out
}

// Lookup returns the registry entry for the managed worktree called name.
// Unlike a plain name lookup it ignores entries outside the managed root,
// such as a main checkout whose directory has the same name.
func (m *Manager) Lookup(ctx context.Context, name string) (git.Worktree, bool) {
	path := m.PathFor(name)
	for _, wt := range m.Managed(ctx) {
		if filepath.Clean(wt.Path) == path {
			return wt, true
		}
	}
	return git.Worktree{}, false
}

// Resolve returns the absolute path of the managed worktree called name.
func (m *Manager) Resolve(ctx context.Context, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	path := m.PathFor(name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", m.notFound(ctx, name)
		}
		return "", fmt.Errorf("check %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", m.notFound(ctx, name)
	}
	return filepath.Abs(path)
}

// Switch starts a shell inside the worktree called name and waits for it.
// The returned code is the shell's exit status.
func (m *Manager) Switch(ctx context.Context, name string) (int, error) {
	path, err := m.Resolve(ctx, name)
	if err != nil {
		return 1, err
	}
	log.FromContext(ctx).Debug("switching worktree", "name", name, "path", path)
	return m.Shell.Spawn(ctx, path, []string{m.EnvVar + "=" + name})
}

// Remove deletes the worktree called name. Its branch stays.
func (m *Manager) Remove(ctx context.Context, name string, force bool) error {
	path, err := m.Resolve(ctx, name)
	if err != nil {
		return err
	}
	log.FromContext(ctx).Debug("removing worktree", "name", name, "path", path, "force", force)
	if err := m.Git.RemoveWorktree(ctx, m.RepoRoot, path, force); err != nil {
		return toolError("remove worktree "+name, err)
	}
	return nil
}

// Rename moves the worktree oldName to newName and renames its branch to
// match. The two steps are separate git commands: if the branch rename
// fails after the move, a *RenameIncompleteError describes the half-done
// state and nothing is undone.
func (m *Manager) Rename(ctx context.Context, oldName, newName string) error {
	l := log.FromContext(ctx)

	if err := ValidateName(oldName); err != nil {
		return err
	}
	if err := ValidateName(newName); err != nil {
		return err
	}

	oldPath := m.PathFor(oldName)
	newPath := m.PathFor(newName)

	found, err := exists(oldPath)
	if err != nil {
		return fmt.Errorf("check %s: %w", oldPath, err)
	}
	if !found {
		return m.notFound(ctx, oldName)
	}

	found, err = exists(newPath)
	if err != nil {
		return fmt.Errorf("check %s: %w", newPath, err)
	}
	if found {
		return &NameError{Kind: ErrAlreadyExists, Name: newName}
	}

	wt, ok := m.Lookup(ctx, oldName)
	if !ok {
		return fmt.Errorf("%w: %s (try 'wtree prune' or 'git worktree repair')", ErrRegistryInconsistency, oldPath)
	}

	l.Debug("moving worktree", "from", oldPath, "to", newPath)
	if err := m.Git.MoveWorktree(ctx, m.RepoRoot, oldPath, newPath); err != nil {
		return toolError("move worktree "+oldName, err)
	}

	l.Debug("renaming branch", "dir", newPath, "to", newName)
	if err := m.Git.RenameCurrentBranch(ctx, newPath, newName); err != nil {
		return &RenameIncompleteError{Old: oldName, New: newName, Branch: wt.ShortBranch(), Path: newPath, Err: err}
	}
	return nil
}

// Prune asks git to forget worktrees whose directories are gone.
func (m *Manager) Prune(ctx context.Context) error {
	if err := m.Git.PruneWorktrees(ctx, m.RepoRoot); err != nil {
		return toolError("prune worktrees", err)
	}
	return nil
}
