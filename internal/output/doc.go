// Package output renders personas and derived variables for the CLI,
// with optional lipgloss styling depending on TTY and --color mode.
package output
