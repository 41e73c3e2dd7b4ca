package git

import (
	"bytes"
	"iter"
	"slices"
	"strings"
)

// DetachedBranch is stored as Branch for worktrees with no branch checked out.
const DetachedBranch = "(detached)"

// Worktree is one entry of `git worktree list --porcelain`.
// Values are snapshots; nothing caches or mutates them.
type Worktree struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Branch    string `json:"branch"` // raw ref, e.g. refs/heads/feature-x, or DetachedBranch
	Head      string `json:"head,omitempty"`
	IsCurrent bool   `json:"is_current"`
	Bare      bool   `json:"bare,omitempty"`
}

// ShortBranch returns Branch without the refs/heads/ prefix.
func (w Worktree) ShortBranch() string {
	return strings.TrimPrefix(w.Branch, "refs/heads/")
}

// IsDetached reports whether the worktree has no branch checked out.
func (w Worktree) IsDetached() bool {
	return w.Branch == DetachedBranch
}

// WorktreeName derives the user-facing name of a worktree: the last
// slash-separated segment of path, ignoring trailing slashes.
func WorktreeName(path string) string {
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// pendingWorktree accumulates the lines of one porcelain group.
// It only becomes a Worktree once the group is closed and a path was seen.
type pendingWorktree struct {
	path      string
	branch    string
	head      string
	bare      bool
	hasPath   bool
	notActive bool
}

func (p pendingWorktree) complete(cwd string) (Worktree, bool) {
	if !p.hasPath || p.path == "" {
		return Worktree{}, false
	}
	return Worktree{
		Path:      p.path,
		Name:      WorktreeName(p.path),
		Branch:    p.branch,
		Head:      p.head,
		IsCurrent: !p.notActive && p.path == cwd,
		Bare:      p.bare,
	}, true
}

// ParsePorcelain parses the output of `git worktree list --porcelain`.
//
// Groups are separated by blank lines; a "worktree" line also closes the
// group before it. Within a group the last occurrence of a field wins and
// unknown lines are skipped. Groups that never named a path are dropped.
// IsCurrent compares each path with cwd verbatim, so symlinked or relative
// spellings of the same directory do not match. The "bare" marker forces
// IsCurrent to false.
//
// The returned sequence is lazy and can be ranged over any number of times.
func ParsePorcelain(data []byte, cwd string) iter.Seq[Worktree] {
	return func(yield func(Worktree) bool) {
		var cur pendingWorktree
		open := false

		flush := func() bool {
			if !open {
				return true
			}
			open = false
			wt, ok := cur.complete(cwd)
			cur = pendingWorktree{}
			if !ok {
				return true
			}
			return yield(wt)
		}

		for line := range bytes.Lines(data) {
			text := strings.TrimRight(string(line), "\r\n")

			switch {
			case text == "":
				if !flush() {
					return
				}
			case strings.HasPrefix(text, "worktree "):
				if !flush() {
					return
				}
				open = true
				cur.path = strings.TrimPrefix(text, "worktree ")
				cur.hasPath = true
			case strings.HasPrefix(text, "branch "):
				open = true
				cur.branch = strings.TrimPrefix(text, "branch ")
			case strings.HasPrefix(text, "HEAD "):
				open = true
				cur.head = strings.TrimPrefix(text, "HEAD ")
			case text == "bare":
				open = true
				cur.bare = true
				cur.notActive = true
			case text == "detached":
				open = true
				cur.branch = DetachedBranch
			}
		}
		flush()
	}
}

// CollectWorktrees drains seq into a slice.
func CollectWorktrees(seq iter.Seq[Worktree]) []Worktree {
	return slices.Collect(seq)
}
