package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		GroupID: "books",
		Short:   "Delete a book by id",
		Example: `  bookshelf delete 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if cat.IsEmpty() {
				return notify(app, cmd, alerts.NewWarning(errors.ErrEmptyCatalog.Error()))
			}

			book, err := cat.Delete(args[0])
			return finish(app, cmd, err, alerts.NewSuccess("Book deleted").WithDetails(book.String()))
		},
	}
}
