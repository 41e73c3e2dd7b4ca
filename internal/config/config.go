package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults for settings left empty in the config file.
const (
	DefaultWorktreeDir = ".worktrees"
	DefaultEnvVar      = "WTREE_WORKTREE"
	DefaultShell       = "/bin/sh"
)

// Color modes for list output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the wtree configuration
type Config struct {
	// WorktreeDir is the managed root, relative to the main repository root.
	WorktreeDir string `toml:"worktree_dir"`
	// Shell is started by "wtree switch". Empty means $SHELL, then /bin/sh.
	Shell string `toml:"shell"`
	// EnvVar names the variable that carries the active worktree name into the subshell.
	EnvVar string `toml:"env_var"`
	Color  string `toml:"color"` // auto, always or never
}

// Default returns the default configuration
func Default() Config {
	return Config{
		WorktreeDir: DefaultWorktreeDir,
		EnvVar:      DefaultEnvVar,
		Color:       ColorAuto,
	}
}

// ShellCommand returns the shell to spawn for "wtree switch".
func (c Config) ShellCommand() string {
	if c.Shell != "" {
		return c.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return DefaultShell
}

// ValidateWorktreeDir checks that dir is a relative path that stays inside
// the repository root.
func ValidateWorktreeDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("worktree_dir must not be empty")
	}
	if filepath.IsAbs(dir) {
		return fmt.Errorf("worktree_dir must be relative to the repository root, got: %q", dir)
	}
	clean := filepath.Clean(dir)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("worktree_dir must be a subdirectory of the repository root, got: %q", dir)
	}
	return nil
}

// Path returns the config file location, honouring $XDG_CONFIG_HOME.
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wtree", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wtree", "config.toml"), nil
}

// Load reads the config file at Path and applies environment overrides.
// A missing file yields Default() without error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default())
	}
	return LoadFile(path)
}

// LoadFile reads config from path and applies environment overrides.
// Returns Default() if the file doesn't exist.
// Returns an error only if the file exists but is invalid.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg)
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return applyEnv(cfg)
}

// applyEnv layers WTREE_* environment variables over cfg, fills empty
// values with defaults and validates the result.
func applyEnv(cfg Config) (Config, error) {
	if v := os.Getenv("WTREE_WORKTREE_DIR"); v != "" {
		cfg.WorktreeDir = v
	}
	if v := os.Getenv("WTREE_SHELL"); v != "" {
		cfg.Shell = v
	}

	if cfg.WorktreeDir == "" {
		cfg.WorktreeDir = DefaultWorktreeDir
	}
	if cfg.EnvVar == "" {
		cfg.EnvVar = DefaultEnvVar
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}

	if err := ValidateWorktreeDir(cfg.WorktreeDir); err != nil {
		return Default(), err
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Default(), fmt.Errorf("invalid color %q: must be \"auto\", \"always\" or \"never\"", cfg.Color)
	}
	return cfg, nil
}

const defaultConfig = `# wtree configuration

# Directory that holds managed worktrees, relative to the repository root.
# worktree_dir = ".worktrees"

# Shell started by "wtree switch" (default: $SHELL, then /bin/sh)
# shell = "/bin/zsh"

# Environment variable set to the worktree name inside that shell
# env_var = "WTREE_WORKTREE"

# Colored list output: "auto", "always" or "never"
# color = "auto"
`

// Template returns the commented default config file.
func Template() string {
	return defaultConfig
}

// Init writes a commented default config file to Path.
// If force is false an existing file is left alone and an error returned.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}
	return path, nil
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config attached to ctx, or Default() if none is.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
