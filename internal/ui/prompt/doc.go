// Package prompt provides the interactive prompts used when a command is
// run on a terminal without its arguments.
//
// All prompts render to stderr so stdout stays clean for piping
// (cd "$(wtree path)" works with the picker).
//
// Available prompts:
//   - [Select]: pick one worktree from a filterable list
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: single-line text input with validation
//
// Callers check [IsInteractive] first; prompts are never started without
// a terminal.
package prompt
