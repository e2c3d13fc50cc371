// Package books implements the scriptable catalog commands: add, delete,
// search, list and status. Each one performs a single catalog operation and
// exits, writing results and notices to the command's output stream.
package books

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// AppContext defines what the book commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	Logger() *zerolog.Logger
	OutputFormat() output.Format
	AlertWriter(w io.Writer, format output.Format) alerts.Writer
}

// notify writes an alert in the command's output format.
func notify(app AppContext, cmd *cobra.Command, alert *alerts.Alert) error {
	return app.AlertWriter(cmd.OutOrStdout(), app.OutputFormat()).WriteAlert(alert)
}

// finish reports the outcome of a mutation. A failed save is returned as an
// error: the change only lived in memory and is lost when the process exits.
func finish(app AppContext, cmd *cobra.Command, err error, success *alerts.Alert) error {
	if err != nil {
		if errors.IsIOError(err) {
			app.Logger().Error().Err(err).Msg("Failed to save catalog")
		}
		return err
	}
	return notify(app, cmd, success)
}

// printBooks renders books in the configured output format.
func printBooks(app AppContext, cmd *cobra.Command, books []catalog.Book) error {
	return output.NewFormatter(app.OutputFormat()).Format(cmd.OutOrStdout(), books)
}
