// Package menu implements the interactive text menu that drives the catalog.
// It owns no state besides its reader and writer: every choice is dispatched
// to a catalog.Store operation and every outcome is reported as an alert.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Prompts and notices shown to the user.
const (
	PromptChoice = "Choose an action: "
	PromptTitle  = "Enter the book title: "
	PromptAuthor = "Enter the book author: "
	PromptYear   = "Enter the publication year: "
	PromptDelete = "Enter the ID of the book to delete: "
	PromptField  = "Search by (title/author/year): "
	PromptQuery  = "Enter the search value: "
	PromptID     = "Enter the ID of the book: "
	PromptStatus = "Enter the new status (available/checked_out): "

	MsgEmpty         = "Catalog is empty"
	MsgInvalidChoice = "Invalid choice"
	MsgExit          = "Exiting"
	MsgAdded         = "Book added"
	MsgDeleted       = "Book deleted"
	MsgStatusChanged = "Book status changed"
	MsgNoBooks       = "No books found"
	MsgSaveFailed    = "Failed to save catalog"
	MsgBooksHeader   = "Books:"
)

// item is one menu entry. A nil run marks the exit entry.
type item struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// line is one line of input, or the error that ended input.
type line struct {
	text string
	err  error
}

// Menu is the interactive loop.
type Menu struct {
	store  catalog.Store
	in     *bufio.Reader
	lines  <-chan line
	out    io.Writer
	alerts alerts.Writer
	logger *zerolog.Logger
	items  []item
}

// Option configures a Menu.
type Option func(*Menu)

// WithAlertWriter sets where notices go. The default writes plain lines to out.
func WithAlertWriter(w alerts.Writer) Option {
	return func(m *Menu) {
		if w != nil {
			m.alerts = w
		}
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a menu reading from in and writing to out.
func New(store catalog.Store, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		alerts: alerts.NewWriterTo(out),
		logger: logging.Default(),
	}
	m.items = []item{
		{"1", "Add book", m.add},
		{"2", "Delete book", m.delete},
		{"3", "Search books", m.search},
		{"4", "Display all books", m.display},
		{"5", "Change book status", m.changeStatus},
		{"6", "Exit", nil},
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu and dispatches choices until the user exits, input
// ends, or ctx is cancelled. Cancellation is honored while waiting for
// input, and a line read after it is never dispatched. Operation failures
// are reported to the user and never end the loop; only input read errors
// are returned.
func (m *Menu) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()
	m.lines = m.readLines(ctx)

	for {
		m.printMenu()
		choice, err := m.prompt(ctx, PromptChoice)
		if err != nil {
			return m.endOfInput(ctx, err)
		}

		it, ok := m.lookup(choice)
		if !ok {
			m.notify(alerts.NewWarning(MsgInvalidChoice))
			continue
		}
		m.logger.Debug().Str("choice", it.key).Str("action", it.label).Msg("Menu choice")

		if it.run == nil {
			m.notify(alerts.NewInfo(MsgExit))
			return nil
		}
		if err := it.run(ctx); err != nil {
			return m.endOfInput(ctx, err)
		}
	}
}

// readLines feeds input lines to the loop until input ends or ctx is done.
// A read blocked on a terminal cannot be interrupted, so after cancellation
// the goroutine exits once that read returns.
func (m *Menu) readLines(ctx context.Context) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		for {
			text, err := m.in.ReadString('\n')
			if text != "" {
				select {
				case lines <- line{text: text}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				select {
				case lines <- line{err: err}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()
	return lines
}

// endOfInput turns EOF and cancellation into a graceful exit.
func (m *Menu) endOfInput(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) || ctx.Err() != nil {
		fmt.Fprintln(m.out)
		m.notify(alerts.NewInfo(MsgExit))
		return nil
	}
	return errors.WrapIO("read", "input", err)
}

func (m *Menu) lookup(choice string) (item, bool) {
	for _, it := range m.items {
		if it.key == choice {
			return it, true
		}
	}
	return item{}, false
}

func (m *Menu) printMenu() {
	var sb strings.Builder
	sb.WriteString("\nMenu:\n")
	for _, it := range m.items {
		fmt.Fprintf(&sb, "%s. %s\n", it.key, it.label)
	}
	fmt.Fprint(m.out, sb.String())
}

// prompt writes the prompt and waits for one trimmed line or cancellation.
func (m *Menu) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(m.out, text)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-m.lines:
		switch {
		case !ok:
			return "", io.EOF
		case l.err != nil:
			return "", l.err
		case ctx.Err() != nil:
			return "", ctx.Err()
		}
		return strings.TrimSpace(l.text), nil
	}
}

// promptAll asks each prompt in order and stops at the first read error.
func (m *Menu) promptAll(ctx context.Context, prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, p := range prompts {
		a, err := m.prompt(ctx, p)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (m *Menu) notify(a *alerts.Alert) {
	if err := m.alerts.WriteAlert(a); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to write alert")
	}
}

// checkEmpty reports an empty catalog and tells the caller to stop.
func (m *Menu) checkEmpty() bool {
	if m.store.IsEmpty() {
		m.notify(alerts.NewWarning(MsgEmpty))
		return true
	}
	return false
}

func (m *Menu) add(ctx context.Context) error {
	in, err := m.promptAll(ctx, PromptTitle, PromptAuthor, PromptYear)
	if err != nil {
		return err
	}
	book, err := m.store.Add(in[0], in[1], in[2])
	m.report(err, alerts.NewSuccess(MsgAdded).WithDetails(book.String()))
	return nil
}

func (m *Menu) delete(ctx context.Context) error {
	if m.checkEmpty() {
		return nil
	}
	id, err := m.prompt(ctx, PromptDelete)
	if err != nil {
		return err
	}
	_, err = m.store.Delete(id)
	m.report(err, alerts.NewSuccess(MsgDeleted))
	return nil
}

func (m *Menu) search(ctx context.Context) error {
	if m.checkEmpty() {
		return nil
	}
	field, err := m.prompt(ctx, PromptField)
	if err != nil {
		return err
	}
	if _, err := catalog.ParseField(field); err != nil {
		m.report(err, nil)
		return nil
	}
	query, err := m.prompt(ctx, PromptQuery)
	if err != nil {
		return err
	}

	books, err := m.store.Search(field, query)
	if err != nil {
		m.report(err, nil)
		return nil
	}
	m.printBooks(books)
	return nil
}

func (m *Menu) display(_ context.Context) error {
	books, err := m.store.List()
	if err != nil {
		m.report(err, nil)
		return nil
	}
	m.printBooks(books)
	return nil
}

func (m *Menu) changeStatus(ctx context.Context) error {
	if m.checkEmpty() {
		return nil
	}
	in, err := m.promptAll(ctx, PromptID, PromptStatus)
	if err != nil {
		return err
	}
	_, err = m.store.ChangeStatus(in[0], in[1])
	m.report(err, alerts.NewSuccess(MsgStatusChanged))
	return nil
}

func (m *Menu) printBooks(books []catalog.Book) {
	fmt.Fprintln(m.out, MsgBooksHeader)
	if err := catalog.Display(m.out, books); err != nil {
		m.report(err, nil)
	}
}

// report turns an operation result into notices. A failed save still
// applied the change in memory, so the success notice follows it.
func (m *Menu) report(err error, success *alerts.Alert) {
	if err != nil {
		m.logger.Debug().Err(err).Msg("Operation failed")
	}

	var (
		vErr  *errors.ValidationError
		nfErr *errors.NotFoundError
	)
	switch {
	case err == nil:
	case errors.IsEmptyCatalog(err):
		m.notify(alerts.NewWarning(MsgEmpty))
		return
	case errors.As(err, &vErr):
		m.notify(alerts.NewError(fmt.Sprintf("Invalid %s: %s", vErr.Field, vErr.Message)))
		return
	case errors.As(err, &nfErr):
		if nfErr.ID == "" {
			m.notify(alerts.NewWarning(MsgNoBooks))
		} else {
			m.notify(alerts.NewWarning(fmt.Sprintf("Book with ID %s not found", nfErr.ID)))
		}
		return
	case errors.IsIOError(err):
		m.notify(alerts.NewError(MsgSaveFailed).WithError(err))
	default:
		m.notify(alerts.NewError("Operation failed").WithError(err))
		return
	}

	if success != nil {
		m.notify(success)
	}
}
