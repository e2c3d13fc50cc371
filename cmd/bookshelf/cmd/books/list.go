package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewListCommand creates the list command.
func NewListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "books",
		Short:   "List every book in the catalog",
		Example: `  bookshelf list
  bookshelf list -o yaml
  bookshelf list -o text
  bookshelf list -o markdown > books.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			books, err := cat.List()
			if errors.IsEmptyCatalog(err) {
				return notify(app, cmd, alerts.NewWarning(err.Error()))
			}
			if err != nil {
				return err
			}
			return printBooks(app, cmd, books)
		},
	}
}
