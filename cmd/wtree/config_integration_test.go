//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/wtree/internal/config"
)

// TestConfigInit writes the template under $XDG_CONFIG_HOME and refuses to
// overwrite it without --force.
func TestConfigInit(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	ctx, out := testContext(t, xdg, nil)
	if err := execute(ctx, newConfigCmd(), "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	path := filepath.Join(xdg, "wtree", "config.toml")
	if got := strings.TrimSpace(out.String()); got != "Created config file: "+path {
		t.Errorf("output = %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != config.Template() {
		t.Error("written config differs from template")
	}

	if err := execute(ctx, newConfigCmd(), "init"); err == nil {
		t.Error("second init should fail without --force")
	}
	if err := execute(ctx, newConfigCmd(), "init", "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}

	// the template only holds comments, so it loads as defaults
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if cfg.WorktreeDir != config.DefaultWorktreeDir {
		t.Errorf("WorktreeDir = %q", cfg.WorktreeDir)
	}
}

// TestConfigShow prints the effective config as TOML.
func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfg := defaultTestConfig()
	cfg.WorktreeDir = "trees"
	cfg.Shell = "/bin/zsh"
	ctx, out := testContext(t, t.TempDir(), cfg)

	if err := execute(ctx, newConfigCmd(), "show"); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var shown config.Config
	if _, err := toml.Decode(out.String(), &shown); err != nil {
		t.Fatalf("output is not TOML: %v\n%s", err, out.String())
	}
	if shown.WorktreeDir != "trees" || shown.Shell != "/bin/zsh" || shown.Color != config.ColorNever {
		t.Errorf("shown = %+v", shown)
	}
}
