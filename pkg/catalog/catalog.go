// Package catalog provides the book catalog store. It keeps an ordered
// sequence of books in memory, loads it from a single JSON or YAML file,
// and rewrites that file after every mutation.
//
// Example usage:
//
//	cat, err := catalog.New(catalog.WithPath("library.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	book, err := cat.Add("Dune", "Frank Herbert", "1965")
//	if errors.IsIOError(err) {
//	    // the book was added in memory but the file was not written
//	}
//
//	books, err := cat.Search("author", "frank herbert")
//
// A Catalog is not safe for concurrent use.
package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Store  = (*Catalog)(nil)
	_ Reader = (*Catalog)(nil)
	_ Writer = (*Catalog)(nil)
)

// Catalog is the file-backed book store.
type Catalog struct {
	options *options
	books   []Book
}

// New creates a catalog and loads it from the configured file.
// A missing file yields an empty catalog; a malformed one is an error.
func New(opts ...Option) (*Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if !o.format.IsValid() {
		return nil, errors.NewConfigError("catalog", "unknown format "+o.format.String(), nil)
	}

	c := &Catalog{options: o}
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the backing file path.
func (c *Catalog) Path() string {
	return c.options.path
}

// Format returns the effective file encoding.
func (c *Catalog) Format() Format {
	if c.options.format == FormatAuto {
		return formatForPath(c.options.path)
	}
	return c.options.format
}

// Load replaces the in-memory records with the contents of the backing file.
func (c *Catalog) Load() error {
	log := c.options.logger
	path := c.options.path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("Catalog file not found, starting empty")
			c.books = nil
			return nil
		}
		return errors.WrapIO("read", path, err)
	}

	format := c.Format()
	books, err := decode(format, data)
	if err != nil {
		return errors.WrapParse(format.String(), path, err)
	}

	c.books = books
	log.Debug().Str("path", path).Int("books", len(books)).Msg("Catalog loaded")
	return nil
}

// Save overwrites the backing file with every record. In-memory state is
// never changed by Save, whether or not the write succeeds.
func (c *Catalog) Save() (err error) {
	path := c.options.path

	data, err := encode(c.Format(), c.books)
	if err != nil {
		return errors.WrapIO("encode", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errors.WrapIO("write", path, err)
	}

	c.options.logger.Debug().Str("path", path).Int("books", len(c.books)).Msg("Catalog saved")
	return nil
}

// IsEmpty reports whether the catalog holds no records.
func (c *Catalog) IsEmpty() bool {
	return len(c.books) == 0
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.books)
}

// List returns a copy of every record in insertion order.
func (c *Catalog) List() ([]Book, error) {
	if c.IsEmpty() {
		return nil, errors.ErrEmptyCatalog
	}
	return slices.Clone(c.books), nil
}

// Add validates the input and appends a new available book, then saves.
// On a save failure the book stays in memory and an IOError is returned
// alongside it.
func (c *Catalog) Add(title, author, year string) (Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Book{}, errors.NewValidationError("title", title, "cannot be empty")
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return Book{}, errors.NewValidationError("author", author, "cannot be empty")
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Book{}, errors.NewValidationError("year", year, "must be a number")
	}

	book := Book{
		ID:     c.nextID(),
		Title:  title,
		Author: author,
		Year:   y,
		Status: StatusAvailable,
	}
	c.books = append(c.books, book)
	c.options.logger.Debug().Int("book_id", book.ID).Str("title", book.Title).Msg("Book added")

	return book, c.Save()
}

// nextID derives the id for a new record.
func (c *Catalog) nextID() int {
	if !c.options.monotonicIDs {
		return len(c.books) + 1
	}
	highest := 0
	for _, b := range c.books {
		highest = max(highest, b.ID)
	}
	return highest + 1
}

// Delete removes the first record whose id matches, then saves.
func (c *Catalog) Delete(id string) (Book, error) {
	if c.IsEmpty() {
		return Book{}, errors.ErrEmptyCatalog
	}
	n, err := parseID(id)
	if err != nil {
		return Book{}, err
	}

	i := c.indexOf(n)
	if i < 0 {
		return Book{}, errors.NewNotFoundError("book", strconv.Itoa(n))
	}

	removed := c.books[i]
	c.books = slices.Delete(c.books, i, i+1)
	c.options.logger.Debug().Int("book_id", removed.ID).Msg("Book deleted")

	return removed, c.Save()
}

// Search returns every record whose field equals query, ignoring case,
// in insertion order.
func (c *Catalog) Search(field, query string) ([]Book, error) {
	if c.IsEmpty() {
		return nil, errors.ErrEmptyCatalog
	}
	f, err := ParseField(field)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewValidationError("query", query, "cannot be empty")
	}

	fold := cases.Fold()
	want := fold.String(query)

	var matches []Book
	for _, b := range c.books {
		if fold.String(f.Value(b)) == want {
			matches = append(matches, b)
		}
	}
	if len(matches) == 0 {
		return nil, errors.NewNotFoundError("books", "")
	}
	return matches, nil
}

// ChangeStatus sets the status of the first record whose id matches, then saves.
func (c *Catalog) ChangeStatus(id, status string) (Book, error) {
	if c.IsEmpty() {
		return Book{}, errors.ErrEmptyCatalog
	}
	n, err := parseID(id)
	if err != nil {
		return Book{}, err
	}
	s, err := ParseStatus(status)
	if err != nil {
		return Book{}, err
	}

	i := c.indexOf(n)
	if i < 0 {
		return Book{}, errors.NewNotFoundError("book", strconv.Itoa(n))
	}

	c.books[i].Status = s
	c.options.logger.Debug().Int("book_id", n).Str("status", s.String()).Msg("Book status changed")

	return c.books[i], c.Save()
}

// indexOf returns the position of the first record with id, or -1.
func (c *Catalog) indexOf(id int) int {
	return slices.IndexFunc(c.books, func(b Book) bool { return b.ID == id })
}
