package styles

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/wtree/internal/config"
)

func TestProfile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if got := Profile(&buf, config.ColorAlways); got != colorprofile.TrueColor {
		t.Errorf("Profile(always) = %v, want TrueColor", got)
	}
	if got := Profile(&buf, config.ColorNever); got != colorprofile.NoTTY {
		t.Errorf("Profile(never) = %v, want NoTTY", got)
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()

	styled := AccentStyle.Render("feature-x")

	tests := []struct {
		mode     string
		wantANSI bool
	}{
		{config.ColorAlways, true},
		{config.ColorNever, false},
		// a buffer is not a terminal
		{config.ColorAuto, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			fmt.Fprint(Writer(&buf, tt.mode), styled)

			got := buf.String()
			if hasANSI := strings.Contains(got, "\x1b["); hasANSI != tt.wantANSI {
				t.Errorf("output %q: ANSI = %v, want %v", got, hasANSI, tt.wantANSI)
			}
			if !strings.Contains(got, "feature-x") {
				t.Errorf("output %q lost its text", got)
			}
		})
	}
}
