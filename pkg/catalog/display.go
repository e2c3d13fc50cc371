package catalog

import (
	"fmt"
	"io"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Display writes one line per book, in order.
func Display(w io.Writer, books []Book) error {
	if len(books) == 0 {
		return errors.ErrEmptyCatalog
	}
	for _, b := range books {
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
