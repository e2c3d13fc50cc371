package books

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "search <field> <query>",
		Aliases: []string{"find"},
		GroupID: "books",
		Short:   "Search books by title, author or year",
		Long: `Search lists books whose field equals the query, ignoring case.

Words after the field are joined with single spaces, so quoting the
query is optional.`,
		Example: `  bookshelf search author tolkien
  bookshelf search title the hobbit
  bookshelf search year 1937 -o json`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			fields := make([]string, 0, len(catalog.Fields))
			for _, f := range catalog.Fields {
				fields = append(fields, f.String())
			}
			return fields, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if cat.IsEmpty() {
				return notify(app, cmd, alerts.NewWarning(errors.ErrEmptyCatalog.Error()))
			}

			books, err := cat.Search(args[0], strings.Join(args[1:], " "))
			switch {
			case errors.IsNotFound(err):
				return notify(app, cmd, alerts.NewWarning("No books found"))
			case err != nil:
				return err
			}

			app.Logger().Debug().Int("matches", len(books)).Msg("Search complete")
			return printBooks(app, cmd, books)
		},
	}
}
