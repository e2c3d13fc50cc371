package books

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "status <id> <status>",
		GroupID: "books",
		Short:   "Change the availability status of a book",
		Long: `Status sets a book to "available" or "checked_out", ignoring case.`,
		Example: `  bookshelf status 2 checked_out
  bookshelf status 2 available`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			statuses := make([]string, 0, len(catalog.Statuses))
			for _, s := range catalog.Statuses {
				statuses = append(statuses, s.String())
			}
			return statuses, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if cat.IsEmpty() {
				return notify(app, cmd, alerts.NewWarning(errors.ErrEmptyCatalog.Error()))
			}

			book, err := cat.ChangeStatus(args[0], strings.Join(args[1:], " "))
			return finish(app, cmd, err, alerts.NewSuccess("Status changed").WithDetails(book.String()))
		},
	}
}
