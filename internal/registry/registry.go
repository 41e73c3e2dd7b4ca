// Package registry is a name-keyed view over the worktrees git reports.
//
// Git owns the worktree registry; this package never caches it. Every call
// re-runs the listing, so results always reflect the last lifecycle step.
package registry

import (
	"context"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/wtree/internal/git"
)

// Lister produces a fresh worktree snapshot for a repository.
type Lister interface {
	ListWorktrees(ctx context.Context, repoDir, cwd string) []git.Worktree
}

// ListerFunc adapts a function to Lister.
type ListerFunc func(ctx context.Context, repoDir, cwd string) []git.Worktree

// ListWorktrees calls f.
func (f ListerFunc) ListWorktrees(ctx context.Context, repoDir, cwd string) []git.Worktree {
	return f(ctx, repoDir, cwd)
}

// GitLister lists worktrees through the git CLI.
var GitLister Lister = ListerFunc(git.ListWorktrees)

// View looks up worktrees of one repository by name.
type View struct {
	Lister  Lister
	RepoDir string // any directory inside the repository
	Cwd     string // compared verbatim against worktree paths for IsCurrent
}

// New returns a View backed by the git CLI.
func New(repoDir, cwd string) *View {
	return &View{Lister: GitLister, RepoDir: repoDir, Cwd: cwd}
}

// List returns all worktrees in git's order. An empty result means git
// reported nothing or could not be queried.
func (v *View) List(ctx context.Context) []git.Worktree {
	return v.Lister.ListWorktrees(ctx, v.RepoDir, v.Cwd)
}

// FindByName returns the first worktree whose name matches.
// Names are path basenames, so two worktrees in different parent
// directories can share one; the earlier entry wins.
func (v *View) FindByName(ctx context.Context, name string) (git.Worktree, bool) {
	for _, wt := range v.List(ctx) {
		if wt.Name == name {
			return wt, true
		}
	}
	return git.Worktree{}, false
}

// Names returns the names of all worktrees in git's order.
func (v *View) Names(ctx context.Context) []string {
	wts := v.List(ctx)
	names := make([]string, 0, len(wts))
	for _, wt := range wts {
		names = append(names, wt.Name)
	}
	return names
}

// Suggest returns up to three names that fuzzy-match name, best first.
func (v *View) Suggest(ctx context.Context, name string) []string {
	return SuggestFrom(name, v.Names(ctx))
}

// SuggestFrom ranks candidates against name, best first, at most three.
func SuggestFrom(name string, candidates []string) []string {
	if name == "" {
		return nil
	}
	var out []string
	for _, m := range fuzzy.Find(name, candidates) {
		if m.Str == name {
			continue
		}
		out = append(out, m.Str)
		if len(out) == 3 {
			break
		}
	}
	return out
}
