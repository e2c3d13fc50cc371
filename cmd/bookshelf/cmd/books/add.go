package books

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
)

// NewAddCommand creates the add command.
func NewAddCommand(app AppContext) *cobra.Command {
	var title, author, year string

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "books",
		Short:   "Add a book to the catalog",
		Long: `Add appends a new book with status "available".

Title and author must not be blank and the year must be an integer.
The book receives the next id and the catalog file is rewritten.`,
		Example: `  bookshelf add --title "Dune" --author "Frank Herbert" --year 1965
  bookshelf add --title "Emma" --author "Jane Austen" --year 1815 -f classics.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			book, err := cat.Add(title, author, year)
			return finish(app, cmd, err, alerts.NewSuccess("Book added").WithDetails(book.String()))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "book author")
	cmd.Flags().StringVar(&year, "year", "", "publication year")

	return cmd
}
