package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.WorktreeDir != DefaultWorktreeDir {
		t.Errorf("WorktreeDir = %q, want %q", cfg.WorktreeDir, DefaultWorktreeDir)
	}
	if cfg.EnvVar != DefaultEnvVar {
		t.Errorf("EnvVar = %q, want %q", cfg.EnvVar, DefaultEnvVar)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
}

func TestValidateWorktreeDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir     string
		wantErr bool
	}{
		{".worktrees", false},
		{"build/trees", false},
		{"./trees", false},
		{"", true},
		{".", true},
		{"..", true},
		{"../siblings", true},
		{"trees/../../out", true},
		{"/abs/trees", true},
	}

	for _, tt := range tests {
		err := ValidateWorktreeDir(tt.dir)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateWorktreeDir(%q) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// Tests below touch process environment and cannot run in parallel.

func TestLoadFile_Missing(t *testing.T) {
	t.Setenv("WTREE_WORKTREE_DIR", "")
	t.Setenv("WTREE_SHELL", "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFile() = %+v, want defaults", cfg)
	}
}

func TestLoadFile_Values(t *testing.T) {
	t.Setenv("WTREE_WORKTREE_DIR", "")
	t.Setenv("WTREE_SHELL", "")

	path := writeConfig(t, `
worktree_dir = "trees"
shell = "/bin/zsh"
env_var = "ACTIVE_TREE"
color = "never"
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	want := Config{WorktreeDir: "trees", Shell: "/bin/zsh", EnvVar: "ACTIVE_TREE", Color: ColorNever}
	if cfg != want {
		t.Errorf("LoadFile() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("WTREE_WORKTREE_DIR", "env-trees")
	t.Setenv("WTREE_SHELL", "/bin/bash")

	cfg, err := LoadFile(writeConfig(t, `worktree_dir = "file-trees"`))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.WorktreeDir != "env-trees" {
		t.Errorf("WorktreeDir = %q, want env-trees", cfg.WorktreeDir)
	}
	if cfg.ShellCommand() != "/bin/bash" {
		t.Errorf("ShellCommand() = %q, want /bin/bash", cfg.ShellCommand())
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv("WTREE_WORKTREE_DIR", "")
	t.Setenv("WTREE_SHELL", "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", `worktree_dir = `, "failed to parse config file"},
		{"absolute dir", `worktree_dir = "/tmp/trees"`, "must be relative"},
		{"escaping dir", `worktree_dir = "../trees"`, "subdirectory"},
		{"bad color", `color = "sometimes"`, "invalid color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
			}
			if cfg != Default() {
				t.Errorf("LoadFile() on error = %+v, want defaults", cfg)
			}
		})
	}
}

func TestShellCommand(t *testing.T) {
	t.Setenv("SHELL", "")
	if got := (Config{}).ShellCommand(); got != DefaultShell {
		t.Errorf("ShellCommand() = %q, want %q", got, DefaultShell)
	}

	t.Setenv("SHELL", "/usr/bin/fish")
	if got := (Config{}).ShellCommand(); got != "/usr/bin/fish" {
		t.Errorf("ShellCommand() = %q, want $SHELL", got)
	}
	if got := (Config{Shell: "/bin/zsh"}).ShellCommand(); got != "/bin/zsh" {
		t.Errorf("ShellCommand() = %q, want configured shell", got)
	}
}

func TestInit(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Errorf("generated config does not load: %v", err)
	}
	if _, err := Init(false); err == nil {
		t.Error("second Init(false) should fail")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(true) error = %v", err)
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{WorktreeDir: "trees"}
	if got := FromContext(WithConfig(context.Background(), cfg)); got != cfg {
		t.Error("FromContext did not return attached config")
	}
	if got := FromContext(context.Background()); *got != Default() {
		t.Errorf("FromContext fallback = %+v, want defaults", *got)
	}
}
