// Package styles provides shared lipgloss styles for terminal output.
//
// Styles always render full ANSI sequences. Whether they reach the terminal
// is decided by the writer: wrap output with [Writer] so colors are
// downsampled or stripped for the detected (or configured) color profile.
package styles

import (
	"image/color"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/wtree/internal/config"
)

// Palette
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for the current item (pink)
	Accent color.Color = lipgloss.Color("212")

	Success color.Color = lipgloss.Color("82")
	Error   color.Color = lipgloss.Color("196")
	Warning color.Color = lipgloss.Color("214")

	// Muted is used for secondary text such as paths (gray)
	Muted color.Color = lipgloss.Color("240")
)

var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Profile picks the color profile for w. "always" and "never" override
// detection; anything else detects from the writer and environment, which
// honors NO_COLOR and CLICOLOR_FORCE.
func Profile(w io.Writer, mode string) colorprofile.Profile {
	switch mode {
	case config.ColorAlways:
		return colorprofile.TrueColor
	case config.ColorNever:
		return colorprofile.NoTTY
	default:
		return colorprofile.Detect(w, os.Environ())
	}
}

// Writer wraps w so styled text written to it matches the color mode.
func Writer(w io.Writer, mode string) io.Writer {
	return &colorprofile.Writer{Forward: w, Profile: Profile(w, mode)}
}
