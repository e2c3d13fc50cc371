package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/books"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// CreateAddCommand creates the add command with app dependencies.
func (a *App) CreateAddCommand() *cobra.Command {
	return books.NewAddCommand(a)
}

// CreateDeleteCommand creates the delete command with app dependencies.
func (a *App) CreateDeleteCommand() *cobra.Command {
	return books.NewDeleteCommand(a)
}

// CreateSearchCommand creates the search command with app dependencies.
func (a *App) CreateSearchCommand() *cobra.Command {
	return books.NewSearchCommand(a)
}

// CreateListCommand creates the list command with app dependencies.
func (a *App) CreateListCommand() *cobra.Command {
	return books.NewListCommand(a)
}

// CreateStatusCommand creates the status command with app dependencies.
func (a *App) CreateStatusCommand() *cobra.Command {
	return books.NewStatusCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "other",
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bookshelf version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}

// OutputFormat returns the format for command results: --format when set,
// otherwise a table on a terminal and JSON when piped.
func (a *App) OutputFormat() output.Format {
	return output.DetectFormat(a.config.Format)
}
