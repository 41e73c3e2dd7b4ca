// Package config handles loading and validation of wtree configuration.
//
// Configuration is read from ~/.config/wtree/config.toml (or
// $XDG_CONFIG_HOME/wtree/config.toml) with environment overrides.
//
// # Configuration Sources (highest priority first)
//
//   - WTREE_WORKTREE_DIR env var: managed worktree directory
//   - WTREE_SHELL env var: shell spawned by "wtree switch"
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - worktree_dir: where worktrees live, relative to the repo root (default ".worktrees")
//   - shell: subshell for "wtree switch" (default $SHELL, then /bin/sh)
//   - env_var: variable carrying the worktree name into that shell (default WTREE_WORKTREE)
//   - color: "auto", "always" or "never" for list output
//
// # Path Validation
//
// worktree_dir must be relative and must not climb out of the repository
// (no absolute paths, no leading "..").
package config
