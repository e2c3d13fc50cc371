// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across the menu and subcommands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: added, deleted and updated books.
	Success = "✓"

	// Error represents failures.
	// Used for: validation errors, failed saves.
	Error = "✗"

	// Warning represents non-critical issues.
	// Used for: empty catalog, no matching books.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"

	// Unknown represents unknown or indeterminate states.
	Unknown = "?"
)
