package format

import (
	"strings"

	"github.com/raphi011/wtree/internal/git"
	"github.com/raphi011/wtree/internal/ui/styles"
	"github.com/raphi011/wtree/internal/worktree"
)

// CurrentMarker flags the worktree containing the working directory.
const CurrentMarker = "*"

// Line renders wt as "<marker> <name> -> <branch> (<path>)".
func Line(wt git.Worktree, repoRoot string) string {
	marker := " "
	if wt.IsCurrent {
		marker = styles.AccentStyle.Render(CurrentMarker)
	}

	branchStyle := styles.PrimaryStyle
	if wt.IsDetached() {
		branchStyle = styles.WarningStyle
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(styles.Bold.Render(wt.Name))
	b.WriteString(" -> ")
	b.WriteString(branchStyle.Render(wt.ShortBranch()))
	b.WriteString(" ")
	b.WriteString(styles.MutedStyle.Render("(" + worktree.DisplayPath(repoRoot, wt.Path) + ")"))
	return b.String()
}

// Lines renders every worktree with [Line].
func Lines(wts []git.Worktree, repoRoot string) []string {
	lines := make([]string, len(wts))
	for i, wt := range wts {
		lines[i] = Line(wt, repoRoot)
	}
	return lines
}

// Record is the JSON shape of one worktree.
type Record struct {
	Name    string `json:"name"`
	Branch  string `json:"branch"`
	Path    string `json:"path"`
	Head    string `json:"head,omitempty"`
	Current bool   `json:"current"`
	Bare    bool   `json:"bare,omitempty"`
}

// Records converts worktrees to their JSON shape. The result is never nil so
// an empty list encodes as [].
func Records(wts []git.Worktree) []Record {
	out := make([]Record, 0, len(wts))
	for _, wt := range wts {
		out = append(out, Record{
			Name:    wt.Name,
			Branch:  wt.ShortBranch(),
			Path:    wt.Path,
			Head:    wt.Head,
			Current: wt.IsCurrent,
			Bare:    wt.Bare,
		})
	}
	return out
}
